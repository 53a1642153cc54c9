package models

// Member rows are provisioned by the identity platform; this service only
// reads them to resolve the authenticated principal.
type Member struct {
	BaseModel

	Name   string  `json:"name" gorm:"uniqueIndex"`
	Nick   string  `json:"nick"`
	Avatar *string `json:"avatar"`
}
