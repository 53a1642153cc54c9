package services

import (
	"errors"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"gorm.io/gorm"
)

func NewComment(member models.Member, postId uint, content string) (models.Comment, error) {
	var post models.Post
	if err := database.C.Where("id = ?", postId).Select("id").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, ErrPostNotFound
		}
		return models.Comment{}, err
	}

	comment := models.Comment{
		Content:  content,
		PostID:   post.ID,
		MemberID: member.ID,
		Member:   member,
	}

	if err := database.C.Omit("Member").Save(&comment).Error; err != nil {
		return comment, err
	}

	return comment, nil
}

func ListComments(postId uint, take int, offset int) ([]models.Comment, int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postId).
		Count(&count).Error; err != nil {
		return nil, count, err
	}

	var comments []models.Comment
	if err := database.C.Where("post_id = ?", postId).
		Preload("Member").
		Limit(take).Offset(offset).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return comments, count, err
	}

	return comments, count, nil
}
