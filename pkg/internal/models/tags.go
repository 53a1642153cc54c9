package models

// Tag names are matched exactly and case-sensitively. The unique index is
// what settles concurrent creations of the same name; see GetTagOrCreate.
type Tag struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Posts []Post `json:"posts" gorm:"many2many:post_tags"`
}
