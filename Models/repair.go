package Models

import (
	"time"

	"gorm.io/gorm"
)

// Payment status codes stored on the ticket and recomputed on every write.
const (
	PaymentStatusUnpaid  = 0
	PaymentStatusPaid    = 1
	PaymentStatusPartial = 2
)

// Warranty status codes, derived at read time.
const (
	WarrantyStatusNone    = 0
	WarrantyStatusActive  = 1
	WarrantyStatusExpired = 2
)

type Repair struct {
	gorm.Model
	RepairDate     time.Time  `json:"repair_date"`
	FinishDate     *time.Time `json:"finish_date"`
	CustomerID     uint       `json:"customer_id" gorm:"not null;index"`
	Customer       Customer   `json:"customer,omitempty"`
	Description    string     `json:"description"`
	Cost           int64      `json:"cost"`
	WarrantyPeriod *int       `json:"warranty_period"`
	PaymentStatus  int        `json:"payment_status"`
	Payments       []Payment  `json:"payments,omitempty" gorm:"foreignKey:RepairID"`
	Warranties     []Warranty `json:"warranties,omitempty" gorm:"foreignKey:RepairID"`
}

type Payment struct {
	gorm.Model
	RepairID      uint      `json:"repair_id" gorm:"not null;index"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod int       `json:"payment_method"`
	PaymentAmount int64     `json:"payment_amount"`
}

type Warranty struct {
	gorm.Model
	RepairID     uint      `json:"repair_id" gorm:"not null;index"`
	WarrantyDate time.Time `json:"warranty_date"`
	Description  string    `json:"description"`
}

// RepairForm is the full submitted state of a ticket. On update, the payment
// and warranty lists are complete sets: anything persisted but missing here
// gets soft-deleted.
type RepairForm struct {
	BasicInfo  RepairBasicInfo `json:"basicInfo" validate:"required"`
	Payments   []PaymentForm   `json:"payments" validate:"dive"`
	Warranties []WarrantyForm  `json:"warranties" validate:"dive"`
}

type RepairBasicInfo struct {
	RepairDate     string `json:"repair_date"`
	FinishDate     string `json:"finish_date"`
	CustomerPhone  string `json:"customer_phone" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Cost           int64  `json:"cost" validate:"required,gt=0"`
	WarrantyPeriod *int   `json:"warranty_period"`
	PaymentStatus  int    `json:"payment_status"`
	RemainingCost  int64  `json:"remaining_cost"`
}

// PaymentForm carries an id only once persisted; new line items come in
// without one.
type PaymentForm struct {
	ID            uint   `json:"id"`
	PaymentDate   string `json:"payment_date"`
	PaymentMethod int    `json:"payment_method"`
	PaymentAmount int64  `json:"payment_amount" validate:"gte=0"`
}

type WarrantyForm struct {
	ID           uint   `json:"id"`
	WarrantyDate string `json:"warranty_date"`
	Description  string `json:"description"`
}

type RepairDetail struct {
	ID         uint             `json:"id"`
	Customer   CustomerResponse `json:"customer"`
	BasicInfo  RepairBasicInfo  `json:"basicInfo"`
	Payments   []PaymentForm    `json:"payments"`
	Warranties []WarrantyForm   `json:"warranties"`
}
