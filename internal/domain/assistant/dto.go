package assistant

import (
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

// Supported request types.
const (
	RequestTypeEmailTemplate     = "email_template"
	RequestTypePolicy            = "policy"
	RequestTypeFormulaSuggestion = "formula_suggestion"
)

// Text sources reported on the response.
const (
	SourceTemplate = "template"
	SourceModel    = "model"
)

type GenerateRequest struct {
	RequestType    string  `json:"request_type"`
	Context        string  `json:"context"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestType) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_type",
			Message: "request_type is required",
		})
	}

	if validator.IsEmpty(r.Context) {
		errs = append(errs, validator.ValidationError{
			Field:   "context",
			Message: "context is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateResponse struct {
	RequestType   string `json:"request_type"`
	GeneratedText string `json:"generated_text"`
	Source        string `json:"source"`
}
