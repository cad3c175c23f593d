package models

import "time"

// Issue is owned by the tracker core; the account subsystem only reads the
// columns needed to populate a profile. Deleting a user leaves issue rows in
// place with a dangling creator id.
type Issue struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatorID   uint      `json:"creator_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}
