// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post in the Ripple application. Likes and Comments are
// denormalized counters maintained transactionally alongside the rows they
// count; they are never recomputed at read time.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Comments  int       `gorm:"not null;default:0" json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
