package Models

// Error codes shared with the desktop client. The numbering is part of the
// wire contract and must not change.
const (
	ErrServerError      = "ERR00000000"
	ErrPhoneConflict    = "ERR00000001"
	ErrCustomerNotFound = "ERR00000002"
	ErrExportEmpty      = "ERR00000003"
	ErrRepairNotFound   = "ERR00000004"
)

// AppResponse is the envelope every service call returns. Business failures
// travel inside the envelope; the HTTP status stays 200.
type AppResponse struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Items   []ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func GetSuccessResponse(data interface{}) *AppResponse {
	return &AppResponse{Success: true, Data: data}
}

func GetErrorResponse(code string) *AppResponse {
	return &AppResponse{Success: false, Error: &ErrorResponse{Code: code}}
}

// GetServerErrorResponse wraps an unexpected failure under the generic code.
func GetServerErrorResponse(err error) *AppResponse {
	message := "An unexpected error occurred"
	if err != nil {
		message = err.Error()
	}
	return &AppResponse{Success: false, Error: &ErrorResponse{Code: ErrServerError, Message: message}}
}

// GetValidationErrorResponse reports per-field validation failures.
func GetValidationErrorResponse(items []ErrorItem) *AppResponse {
	return &AppResponse{Success: false, Error: &ErrorResponse{Items: items}}
}
