package Models

import (
	"gorm.io/gorm"
)

// Customer owns repair tickets. Phone is unique among active rows; the check
// lives in the service because soft-deleted rows may keep the same phone.
type Customer struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null;index"`
	Address string `json:"address"`
}

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

type CustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Suggestion is a typeahead row: the phone doubles as the stable id.
type Suggestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
