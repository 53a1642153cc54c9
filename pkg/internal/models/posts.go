package models

import "time"

type Post struct {
	BaseModel

	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Language string  `json:"language"`
	FilePath *string `json:"file_path"`

	Tags     []Tag     `json:"tags" gorm:"many2many:post_tags"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`

	EditedAt *time.Time `json:"edited_at"`

	MemberID uint   `json:"member_id"`
	Member   Member `json:"member"`
}

type PostRequest struct {
	Title   string   `json:"title" form:"title" validate:"required,max=160"`
	Content string   `json:"content" form:"content" validate:"max=4096"`
	Tags    []string `json:"tags" form:"tags"`
}

// PostResponse is the read model handed to callers. LikeCount is always
// derived, never stored on the post row.
type PostResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Language     string     `json:"language"`
	FilePath     *string    `json:"file_path"`
	Username     string     `json:"username"`
	CreatedAt    time.Time  `json:"created_at"`
	EditedAt     *time.Time `json:"edited_at"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	Tags         []string   `json:"tags"`
}
