package Models

// SearchPayload is a conjunctive filter over active tickets. CustomerPhone is
// set when the client picked a suggestion (exact match); CustomerNameOrPhone
// falls back to a substring match over phone or name.
type SearchPayload struct {
	CustomerNameOrPhone string `json:"customerNameOrPhone"`
	CustomerPhone       string `json:"customerPhone"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	PaymentStatus       *int   `json:"paymentStatus"`
}

type SearchResult struct {
	ID                uint   `json:"id"`
	RepairDate        string `json:"repair_date"`
	RepairDescription string `json:"repair_description"`
	Customer          string `json:"customer"`
	RepairCost        int64  `json:"repair_cost"`
	PaymentStatus     int    `json:"payment_status"`
	WarrantyStatus    int    `json:"warranty_status"`
}
