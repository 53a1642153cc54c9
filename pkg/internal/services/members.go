package services

import (
	"errors"

	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/models"
	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

// GetMemberByUsername resolves an authenticated principal to its member row.
// A principal without a row is a caller problem, not a server fault.
func GetMemberByUsername(name string) (models.Member, error) {
	var member models.Member
	if err := database.C.Where("name = ?", name).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return member, ErrMemberNotFound
		}
		return member, err
	}
	return member, nil
}

func GetMember(id uint) (models.Member, error) {
	var member models.Member
	if err := database.C.Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return member, ErrMemberNotFound
		}
		return member, err
	}
	return member, nil
}
