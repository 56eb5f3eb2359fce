package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"carexpress-dispatch/internal/domain"
)

// Largest backup document accepted by Read.
const MaxBackupBytes = 8 << 20

// FileName returns the download name of a backup taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("carexpress-backup-%s.json", t.UTC().Format("2006-01-02"))
}

// Write encodes b as indented JSON.
func Write(w io.Writer, b domain.Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Read decodes a backup document. Collections missing from the document stay
// nil in the snapshot. Every failure wraps domain.ErrInvalidBackup.
func Read(r io.Reader) (domain.RestoreSnapshot, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBackupBytes+1))
	if err != nil {
		return domain.RestoreSnapshot{}, fmt.Errorf("%w: read: %v", domain.ErrInvalidBackup, err)
	}
	if len(data) > MaxBackupBytes {
		return domain.RestoreSnapshot{}, fmt.Errorf("%w: larger than %d bytes", domain.ErrInvalidBackup, MaxBackupBytes)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return domain.RestoreSnapshot{}, fmt.Errorf("%w: not a JSON object", domain.ErrInvalidBackup)
	}

	var snap domain.RestoreSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.RestoreSnapshot{}, fmt.Errorf("%w: parse json: %v", domain.ErrInvalidBackup, err)
	}
	if snap.Empty() {
		return domain.RestoreSnapshot{}, fmt.Errorf("%w: no locations, vehicles or orders", domain.ErrInvalidBackup)
	}

	return snap, nil
}

// ReadFile reads a backup document from path.
func ReadFile(path string) (domain.RestoreSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RestoreSnapshot{}, fmt.Errorf("read backup %q: %w", path, err)
	}
	defer f.Close()

	snap, err := Read(f)
	if err != nil {
		return domain.RestoreSnapshot{}, fmt.Errorf("read backup %q: %w", path, err)
	}
	return snap, nil
}

// WriteFile writes b to path, creating parent directories as needed.
func WriteFile(path string, b domain.Backup) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write backup %q: %w", path, err)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, b); err != nil {
		return fmt.Errorf("write backup %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write backup %q: %w", path, err)
	}
	return nil
}
