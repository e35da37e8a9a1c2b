package Services

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"Anvil/Models"
)

const suggestionTypeCustomer = "customer"

// customerSeparator joins phone and name in suggestion rows; a search key that
// is only the separator would match every customer, so it yields nothing.
const customerSeparator = "／"

// SuggestionService backs the typeahead inputs.
type SuggestionService struct {
	DB *gorm.DB
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{DB: db}
}

func (s *SuggestionService) Suggest(suggestType, key string) *Models.AppResponse {
	switch suggestType {
	case suggestionTypeCustomer:
		suggestions, err := s.suggestCustomers(key)
		if err != nil {
			log.Printf("Suggest: %v", err)
			return Models.GetServerErrorResponse(err)
		}
		return Models.GetSuccessResponse(suggestions)
	default:
		return Models.GetSuccessResponse([]Models.Suggestion{})
	}
}

func (s *SuggestionService) suggestCustomers(key string) ([]Models.Suggestion, error) {
	lowerKey := strings.ToLower(key)
	if strings.TrimSpace(lowerKey) == customerSeparator {
		return []Models.Suggestion{}, nil
	}

	suggestions := []Models.Suggestion{}
	err := s.DB.Raw(`
		SELECT
			phone AS id,
			phone || '／' || name AS text
		FROM customers
		WHERE
			LOWER(phone || '／' || name) LIKE ?
			AND deleted_at IS NULL
		ORDER BY phone ASC, name ASC
	`, "%"+lowerKey+"%").Scan(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
