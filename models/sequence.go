package models

// Sequence holds the last ordinal issued for one numbered entity kind.
// Incremented atomically by services.NextSequence, never scanned from data
// rows.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}
