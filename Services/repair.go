package Services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"Anvil/AbstractFunctions"
	"Anvil/Models"
)

// RepairService implements the ticket lifecycle: create, read, update with
// child reconciliation, and cascading soft delete.
type RepairService struct {
	DB *gorm.DB
}

func NewRepairService(db *gorm.DB) *RepairService {
	return &RepairService{DB: db}
}

// GetPaymentStatus derives the status code from the submitted payments and
// the ticket cost: 0 when nothing is paid, 1 when the total covers the cost,
// 2 otherwise.
func GetPaymentStatus(payments []Models.PaymentForm, cost int64) int {
	var total int64
	for _, payment := range payments {
		total += payment.PaymentAmount
	}
	if total == 0 {
		return Models.PaymentStatusUnpaid
	}
	if total >= cost {
		return Models.PaymentStatusPaid
	}
	return Models.PaymentStatusPartial
}

// CreateRepair persists a new ticket with all submitted payments and
// warranties in one transaction. The customer must already exist under the
// submitted phone.
func (s *RepairService) CreateRepair(form *Models.RepairForm) *Models.AppResponse {
	var customer Models.Customer
	if err := s.DB.Where("phone = ?", form.BasicInfo.CustomerPhone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrCustomerNotFound)
		}
		log.Printf("CreateRepair: customer lookup failed: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	now := time.Now()
	var finishDate *time.Time
	if form.BasicInfo.FinishDate != "" {
		if parsed, err := AbstractFunctions.ParsePayloadDate(form.BasicInfo.FinishDate); err == nil {
			finishDate = &parsed
		}
	}
	repair := Models.Repair{
		RepairDate:     AbstractFunctions.ParsePayloadDateOr(form.BasicInfo.RepairDate, now),
		FinishDate:     finishDate,
		CustomerID:     customer.ID,
		Description:    form.BasicInfo.Description,
		Cost:           form.BasicInfo.Cost,
		WarrantyPeriod: form.BasicInfo.WarrantyPeriod,
		PaymentStatus:  GetPaymentStatus(form.Payments, form.BasicInfo.Cost),
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return Models.GetServerErrorResponse(tx.Error)
	}

	if err := tx.Create(&repair).Error; err != nil {
		tx.Rollback()
		log.Printf("CreateRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	for _, item := range form.Payments {
		payment := Models.Payment{
			RepairID:      repair.ID,
			PaymentDate:   AbstractFunctions.ParsePayloadDateOr(item.PaymentDate, now),
			PaymentMethod: item.PaymentMethod,
			PaymentAmount: item.PaymentAmount,
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			log.Printf("CreateRepair: payment insert failed: %v", err)
			return Models.GetServerErrorResponse(err)
		}
	}

	for _, item := range form.Warranties {
		warranty := Models.Warranty{
			RepairID:     repair.ID,
			WarrantyDate: AbstractFunctions.ParsePayloadDateOr(item.WarrantyDate, now),
			Description:  item.Description,
		}
		if err := tx.Create(&warranty).Error; err != nil {
			tx.Rollback()
			log.Printf("CreateRepair: warranty insert failed: %v", err)
			return Models.GetServerErrorResponse(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("CreateRepair: commit failed: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	return Models.GetSuccessResponse(Models.RepairDetail{ID: repair.ID})
}

// GetRepairByID returns the active ticket with its customer, children in
// insertion order, and the derived remaining cost.
func (s *RepairService) GetRepairByID(id uint) *Models.AppResponse {
	var repair Models.Repair
	err := s.DB.
		Preload("Customer").
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Warranties", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&repair, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrRepairNotFound)
		}
		log.Printf("GetRepairByID: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	var paid int64
	payments := make([]Models.PaymentForm, 0, len(repair.Payments))
	for _, payment := range repair.Payments {
		paid += payment.PaymentAmount
		date := payment.PaymentDate
		payments = append(payments, Models.PaymentForm{
			ID:            payment.ID,
			PaymentDate:   date.Format(AbstractFunctions.PayloadDateLayout),
			PaymentMethod: payment.PaymentMethod,
			PaymentAmount: payment.PaymentAmount,
		})
	}

	warranties := make([]Models.WarrantyForm, 0, len(repair.Warranties))
	for _, warranty := range repair.Warranties {
		warranties = append(warranties, Models.WarrantyForm{
			ID:           warranty.ID,
			WarrantyDate: warranty.WarrantyDate.Format(AbstractFunctions.PayloadDateLayout),
			Description:  warranty.Description,
		})
	}

	finishDate := ""
	if repair.FinishDate != nil {
		finishDate = repair.FinishDate.Format(AbstractFunctions.PayloadDateLayout)
	}

	detail := Models.RepairDetail{
		ID: repair.ID,
		Customer: Models.CustomerResponse{
			ID:      repair.Customer.ID,
			Name:    repair.Customer.Name,
			Phone:   repair.Customer.Phone,
			Address: repair.Customer.Address,
		},
		BasicInfo: Models.RepairBasicInfo{
			RepairDate:     repair.RepairDate.Format(AbstractFunctions.PayloadDateLayout),
			FinishDate:     finishDate,
			CustomerPhone:  repair.Customer.Phone,
			Description:    repair.Description,
			Cost:           repair.Cost,
			WarrantyPeriod: repair.WarrantyPeriod,
			PaymentStatus:  repair.PaymentStatus,
			RemainingCost:  repair.Cost - paid,
		},
		Payments:   payments,
		Warranties: warranties,
	}

	return Models.GetSuccessResponse(detail)
}

// UpdateRepair overwrites the ticket and reconciles both child collections in
// one transaction. The submitted phone only has to resolve to an active
// customer; the ticket keeps its original owner even when the phone belongs to
// someone else.
func (s *RepairService) UpdateRepair(id uint, form *Models.RepairForm) *Models.AppResponse {
	var repair Models.Repair
	if err := s.DB.First(&repair, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrRepairNotFound)
		}
		log.Printf("UpdateRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	var customer Models.Customer
	if err := s.DB.Where("phone = ?", form.BasicInfo.CustomerPhone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrCustomerNotFound)
		}
		log.Printf("UpdateRepair: customer lookup failed: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	var existingPayments []Models.Payment
	if err := s.DB.Where("repair_id = ?", id).Order("id ASC").Find(&existingPayments).Error; err != nil {
		log.Printf("UpdateRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	var existingWarranties []Models.Warranty
	if err := s.DB.Where("repair_id = ?", id).Order("id ASC").Find(&existingWarranties).Error; err != nil {
		log.Printf("UpdateRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	paymentsToCreate, paymentsToUpdate, paymentsToDelete := partitionByID(
		form.Payments, existingPayments,
		func(p Models.PaymentForm) uint { return p.ID },
		func(p Models.Payment) uint { return p.ID },
	)
	warrantiesToCreate, warrantiesToUpdate, warrantiesToDelete := partitionByID(
		form.Warranties, existingWarranties,
		func(w Models.WarrantyForm) uint { return w.ID },
		func(w Models.Warranty) uint { return w.ID },
	)

	now := time.Now()
	tx := s.DB.Begin()
	if tx.Error != nil {
		return Models.GetServerErrorResponse(tx.Error)
	}

	applyErr := func() error {
		for _, item := range paymentsToDelete {
			if err := tx.Delete(&Models.Payment{}, item.ID).Error; err != nil {
				return err
			}
		}
		for _, item := range paymentsToUpdate {
			updates := map[string]interface{}{
				"payment_date":   AbstractFunctions.ParsePayloadDateOr(item.PaymentDate, now),
				"payment_method": item.PaymentMethod,
				"payment_amount": item.PaymentAmount,
			}
			if err := tx.Model(&Models.Payment{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
				return err
			}
		}
		for _, item := range paymentsToCreate {
			payment := Models.Payment{
				RepairID:      id,
				PaymentDate:   AbstractFunctions.ParsePayloadDateOr(item.PaymentDate, now),
				PaymentMethod: item.PaymentMethod,
				PaymentAmount: item.PaymentAmount,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}

		for _, item := range warrantiesToDelete {
			if err := tx.Delete(&Models.Warranty{}, item.ID).Error; err != nil {
				return err
			}
		}
		for _, item := range warrantiesToUpdate {
			updates := map[string]interface{}{
				"warranty_date": AbstractFunctions.ParsePayloadDateOr(item.WarrantyDate, now),
				"description":   item.Description,
			}
			if err := tx.Model(&Models.Warranty{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
				return err
			}
		}
		for _, item := range warrantiesToCreate {
			warranty := Models.Warranty{
				RepairID:     id,
				WarrantyDate: AbstractFunctions.ParsePayloadDateOr(item.WarrantyDate, now),
				Description:  item.Description,
			}
			if err := tx.Create(&warranty).Error; err != nil {
				return err
			}
		}

		var finishDate interface{}
		if form.BasicInfo.FinishDate != "" {
			if parsed, err := AbstractFunctions.ParsePayloadDate(form.BasicInfo.FinishDate); err == nil {
				finishDate = parsed
			}
		}
		var warrantyPeriod interface{}
		if form.BasicInfo.WarrantyPeriod != nil {
			warrantyPeriod = *form.BasicInfo.WarrantyPeriod
		}
		updates := map[string]interface{}{
			"repair_date":     AbstractFunctions.ParsePayloadDateOr(form.BasicInfo.RepairDate, now),
			"finish_date":     finishDate,
			"description":     form.BasicInfo.Description,
			"cost":            form.BasicInfo.Cost,
			"warranty_period": warrantyPeriod,
			"payment_status":  GetPaymentStatus(form.Payments, form.BasicInfo.Cost),
		}
		return tx.Model(&repair).Updates(updates).Error
	}()
	if applyErr != nil {
		tx.Rollback()
		log.Printf("UpdateRepair: %v", applyErr)
		return Models.GetServerErrorResponse(applyErr)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("UpdateRepair: commit failed: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	return Models.GetSuccessResponse(nil)
}

// DeleteRepair soft-deletes the ticket and cascades to its active payments
// and warranties.
func (s *RepairService) DeleteRepair(id uint) *Models.AppResponse {
	var repair Models.Repair
	if err := s.DB.First(&repair, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrRepairNotFound)
		}
		log.Printf("DeleteRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return Models.GetServerErrorResponse(tx.Error)
	}
	if err := tx.Delete(&repair).Error; err != nil {
		tx.Rollback()
		log.Printf("DeleteRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	if err := tx.Where("repair_id = ?", id).Delete(&Models.Payment{}).Error; err != nil {
		tx.Rollback()
		log.Printf("DeleteRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	if err := tx.Where("repair_id = ?", id).Delete(&Models.Warranty{}).Error; err != nil {
		tx.Rollback()
		log.Printf("DeleteRepair: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	if err := tx.Commit().Error; err != nil {
		log.Printf("DeleteRepair: commit failed: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	return Models.GetSuccessResponse(nil)
}
