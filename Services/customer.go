package Services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"Anvil/Models"
)

// CustomerService manages the customer book. The phone-uniqueness rule only
// counts active rows, so it is enforced here instead of a DB constraint.
type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) CreateCustomer(request *Models.CustomerRequest) *Models.AppResponse {
	var existing Models.Customer
	err := s.DB.Where("phone = ?", request.Phone).First(&existing).Error
	if err == nil {
		return Models.GetErrorResponse(Models.ErrPhoneConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("CreateCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	customer := Models.Customer{
		Name:    request.Name,
		Phone:   request.Phone,
		Address: request.Address,
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		log.Printf("CreateCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	return Models.GetSuccessResponse(nil)
}

func (s *CustomerService) GetCustomers() *Models.AppResponse {
	var customers []Models.Customer
	if err := s.DB.Order("id ASC").Find(&customers).Error; err != nil {
		log.Printf("GetCustomers: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	responses := make([]Models.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, Models.CustomerResponse{
			ID:      customer.ID,
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
		})
	}
	return Models.GetSuccessResponse(responses)
}

func (s *CustomerService) UpdateCustomer(id uint, request *Models.CustomerRequest) *Models.AppResponse {
	var customer Models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrCustomerNotFound)
		}
		log.Printf("UpdateCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	var conflicting Models.Customer
	err := s.DB.Where("phone = ? AND id <> ?", request.Phone, id).First(&conflicting).Error
	if err == nil {
		return Models.GetErrorResponse(Models.ErrPhoneConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("UpdateCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	updates := map[string]interface{}{
		"name":    request.Name,
		"phone":   request.Phone,
		"address": request.Address,
	}
	if err := s.DB.Model(&customer).Updates(updates).Error; err != nil {
		log.Printf("UpdateCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	return Models.GetSuccessResponse(nil)
}

func (s *CustomerService) DeleteCustomer(id uint) *Models.AppResponse {
	var customer Models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Models.GetErrorResponse(Models.ErrCustomerNotFound)
		}
		log.Printf("DeleteCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}

	if err := s.DB.Delete(&customer).Error; err != nil {
		log.Printf("DeleteCustomer: %v", err)
		return Models.GetServerErrorResponse(err)
	}
	return Models.GetSuccessResponse(nil)
}
