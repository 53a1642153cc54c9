package models

import "time"

// StorageObject tracks every uploaded object so the orphan sweep can find
// uploads whose owning post never committed. PostID is claimed inside the
// post transaction; the upload itself happens outside of it.
type StorageObject struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Key      string `json:"key" gorm:"uniqueIndex"`
	Category string `json:"category"`
	PostID   *uint  `json:"post_id"`
}
