package Models

import (
	"gorm.io/gorm"
)

// Reference dataset for the Common table. Labels are what the shop's staff see
// in dropdowns and exports; Extra1 on warranty-type rows is the length in
// months.
var commonSeed = []Common{
	{Key: KeyPaymentStatus, Name: "payment_status", Cd: 0, Value: "Chưa thanh toán", DisplayOrder: 1},
	{Key: KeyPaymentStatus, Name: "payment_status", Cd: 1, Value: "Đã thanh toán", DisplayOrder: 2},
	{Key: KeyPaymentStatus, Name: "payment_status", Cd: 2, Value: "Thanh toán một phần", DisplayOrder: 3},

	{Key: KeyWarrantyType, Name: "warranty_type", Cd: 1, Value: "1 tháng", DisplayOrder: 1, Extra1: "1"},
	{Key: KeyWarrantyType, Name: "warranty_type", Cd: 2, Value: "3 tháng", DisplayOrder: 2, Extra1: "3"},
	{Key: KeyWarrantyType, Name: "warranty_type", Cd: 3, Value: "6 tháng", DisplayOrder: 3, Extra1: "6"},
	{Key: KeyWarrantyType, Name: "warranty_type", Cd: 4, Value: "12 tháng", DisplayOrder: 4, Extra1: "12"},
	{Key: KeyWarrantyType, Name: "warranty_type", Cd: 5, Value: "24 tháng", DisplayOrder: 5, Extra1: "24"},

	{Key: KeyPaymentMethod, Name: "payment_method", Cd: 1, Value: "Tiền mặt", DisplayOrder: 1},
	{Key: KeyPaymentMethod, Name: "payment_method", Cd: 2, Value: "Chuyển khoản", DisplayOrder: 2},
	{Key: KeyPaymentMethod, Name: "payment_method", Cd: 3, Value: "Thẻ", DisplayOrder: 3},

	{Key: KeyWarrantyStatus, Name: "warranty_status", Cd: 0, Value: "Không bảo hành", DisplayOrder: 1},
	{Key: KeyWarrantyStatus, Name: "warranty_status", Cd: 1, Value: "Còn bảo hành", DisplayOrder: 2},
	{Key: KeyWarrantyStatus, Name: "warranty_status", Cd: 2, Value: "Hết bảo hành", DisplayOrder: 3},
}

// InitializeCommonData seeds the lookup table. Safe to call on every startup:
// when the active rows already cover exactly the seed's keys nothing changes;
// on any mismatch the table content is replaced wholesale in one transaction.
func InitializeCommonData(db *gorm.DB) error {
	var existingKeys []string
	if err := db.Model(&Common{}).Distinct("key").Pluck("key", &existingKeys).Error; err != nil {
		return err
	}

	seedKeys := make(map[string]struct{})
	for _, row := range commonSeed {
		seedKeys[row.Key] = struct{}{}
	}

	if len(existingKeys) == len(seedKeys) {
		matched := true
		for _, key := range existingKeys {
			if _, ok := seedKeys[key]; !ok {
				matched = false
				break
			}
		}
		if matched {
			return nil
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&Common{}).Error; err != nil {
			return err
		}
		rows := make([]Common, len(commonSeed))
		copy(rows, commonSeed)
		return tx.Create(&rows).Error
	})
}
