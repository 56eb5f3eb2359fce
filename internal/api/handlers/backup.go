package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"carexpress-dispatch/internal/adapters/backup"
	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/ports"
)

// BackupHandler serves whole-store downloads and restores.
type BackupHandler struct {
	Store ports.Snapshotter
	Now   func() time.Time
}

func (h *BackupHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *BackupHandler) Download(w http.ResponseWriter, r *http.Request) {
	b := h.Store.Backup()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", backup.FileName(h.now())))
	w.WriteHeader(http.StatusOK)
	if err := backup.Write(w, b); err != nil {
		logEntry(r).WithError(err).Warn("backup download interrupted")
	}
}

// Restore accepts a backup document either as the raw request body or as the
// "file" field of a multipart form.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	body, closeBody, err := backupBody(w, r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	defer closeBody()

	snap, err := backup.Read(body)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.Store.Restore(r.Context(), snap); err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.RestoreResponse{Message: "backup restored", Summary: toSummaryResponse(h.Store)}
	writeJSON(w, r, http.StatusOK, res)
}

func backupBody(w http.ResponseWriter, r *http.Request) (io.Reader, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, backup.MaxBackupBytes+(1<<16))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() { _ = r.Body.Close() }, nil
	}

	if err := r.ParseMultipartForm(backup.MaxBackupBytes); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: missing form file %q", domain.ErrInvalidBackup, "file")
	}
	return f, func() { _ = f.Close() }, nil
}
