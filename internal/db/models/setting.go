// Package models contains database model definitions.
package models

// Setting is a named JSON document in the generic settings store.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:191"`
	Value JSON   `gorm:"not null"`
}
