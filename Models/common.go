package Models

import (
	"strconv"

	"gorm.io/gorm"
)

// Lookup categories in the Common table. The keys are fixed codes shared with
// the desktop client.
const (
	KeyPaymentStatus  = "0000000001"
	KeyWarrantyType   = "0000000002"
	KeyPaymentMethod  = "0000000003"
	KeyWarrantyStatus = "0000000004"
)

// Common is the generic code/label reference table. Value holds the display
// label; Extra1 holds the warranty length in months for warranty-type rows.
type Common struct {
	gorm.Model
	Key          string `json:"key" gorm:"not null;index"`
	Name         string `json:"name"`
	Cd           int    `json:"cd" gorm:"not null"`
	Value        string `json:"value"`
	DisplayOrder int    `json:"display_order"`
	Extra1       string `json:"extra_1"`
	Extra2       string `json:"extra_2"`
	Extra3       string `json:"extra_3"`
	Extra4       string `json:"extra_4"`
	Extra5       string `json:"extra_5"`
}

// OptionItem is the dropdown shape the client expects: Value carries the code,
// Key carries the label.
type OptionItem struct {
	Value  int    `json:"value"`
	Key    string `json:"key"`
	Extra1 string `json:"extra_1"`
	Extra2 string `json:"extra_2"`
	Extra3 string `json:"extra_3"`
	Extra4 string `json:"extra_4"`
	Extra5 string `json:"extra_5"`
}

// GetOptionsByKey returns the active rows of one lookup category in display
// order.
func GetOptionsByKey(db *gorm.DB, key string) ([]OptionItem, error) {
	var rows []Common
	if err := db.Where("key = ?", key).Order("display_order ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	options := make([]OptionItem, 0, len(rows))
	for _, row := range rows {
		options = append(options, OptionItem{
			Value:  row.Cd,
			Key:    row.Value,
			Extra1: row.Extra1,
			Extra2: row.Extra2,
			Extra3: row.Extra3,
			Extra4: row.Extra4,
			Extra5: row.Extra5,
		})
	}
	return options, nil
}

// GetKeyValueMap returns code to label for one lookup category.
func GetKeyValueMap(db *gorm.DB, key string) map[int]string {
	options, err := GetOptionsByKey(db, key)
	if err != nil {
		return map[int]string{}
	}
	labels := make(map[int]string, len(options))
	for _, option := range options {
		labels[option.Value] = option.Key
	}
	return labels
}

// WarrantyMonths resolves the configured warranty length for a warranty-type
// code. A missing or malformed row counts as zero months.
func WarrantyMonths(db *gorm.DB, cd int) int {
	var row Common
	err := db.Where("key = ? AND cd = ?", KeyWarrantyType, cd).First(&row).Error
	if err != nil {
		return 0
	}
	months, err := strconv.Atoi(row.Extra1)
	if err != nil {
		return 0
	}
	return months
}
