package models

type Comment struct {
	BaseModel

	Content string `json:"content"`

	PostID   uint   `json:"post_id"`
	MemberID uint   `json:"member_id"`
	Member   Member `json:"member"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2048"`
}
