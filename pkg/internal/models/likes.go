package models

import "time"

// No soft deletion here, an un-liked row has to vanish for the unique
// index to allow liking the post again.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	PostID   uint `json:"post_id" gorm:"uniqueIndex:idx_likes_member_post"`
	MemberID uint `json:"member_id" gorm:"uniqueIndex:idx_likes_member_post"`
}
