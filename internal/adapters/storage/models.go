package storage

import "time"

// EntryModel is the GORM model for the key/value entries table
type EntryModel struct {
	Key       string `gorm:"column:entry_key;primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (EntryModel) TableName() string { return "entries" }
