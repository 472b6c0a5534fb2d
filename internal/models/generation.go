// Package models defines the persisted data structures for identicon.
package models

import "time"

// Generation records one identicon written to disk.
type Generation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Input     string    `gorm:"type:text" json:"input"`
	Digest    string    `gorm:"size:32;index" json:"digest"` // hex MD5 of Input
	Color     string    `gorm:"size:7" json:"color"`         // #rrggbb
	Filled    int       `gorm:"default:0" json:"filled"`     // cells painted
	Path      string    `gorm:"size:1024" json:"path"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Generation) TableName() string {
	return "generations"
}
