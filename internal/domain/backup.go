package domain

import "time"

// Timestamp layout of backup files (UTC, millisecond precision).
const BackupTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Full export of the entity store.
type Backup struct {
	Locations []Location `json:"locations"`
	Vehicles  []Vehicle  `json:"vehicles"`
	Orders    []Order    `json:"orders"`
	Timestamp string     `json:"timestamp"`
}

// Snapshot accepted on restore. A nil collection was absent from the file
// and is left untouched by the store.
type RestoreSnapshot struct {
	Locations *[]Location `json:"locations"`
	Vehicles  *[]Vehicle  `json:"vehicles"`
	Orders    *[]Order    `json:"orders"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Report whether the snapshot carries no collection at all.
func (s RestoreSnapshot) Empty() bool {
	return s.Locations == nil && s.Vehicles == nil && s.Orders == nil
}

// Return t formatted as a backup timestamp.
func FormatBackupTimestamp(t time.Time) string {
	return t.UTC().Format(BackupTimestampLayout)
}

// Full snapshot as a restore request.
func (b Backup) AsRestore() RestoreSnapshot {
	locations, vehicles, orders := b.Locations, b.Vehicles, b.Orders
	return RestoreSnapshot{
		Locations: &locations,
		Vehicles:  &vehicles,
		Orders:    &orders,
		Timestamp: b.Timestamp,
	}
}
