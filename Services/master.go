package Services

import (
	"log"

	"gorm.io/gorm"

	"Anvil/Models"
)

// MasterService exposes the lookup table to the client's dropdowns.
type MasterService struct {
	DB *gorm.DB
}

func NewMasterService(db *gorm.DB) *MasterService {
	return &MasterService{DB: db}
}

// GetOptionsByKey never fails toward the client: a broken lookup read logs
// and degrades to an empty option list.
func (s *MasterService) GetOptionsByKey(key string) *Models.AppResponse {
	options, err := Models.GetOptionsByKey(s.DB, key)
	if err != nil {
		log.Printf("GetOptionsByKey: %v", err)
		return Models.GetSuccessResponse([]Models.OptionItem{})
	}
	return Models.GetSuccessResponse(options)
}
