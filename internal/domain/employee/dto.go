package employee

import (
	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID       string   `json:"emp_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Designation string   `json:"designation"`
	JoinDate    string   `json:"join_date"` // YYYY-MM-DD
	BasicSalary float64  `json:"basic_salary"`
	HRA         float64  `json:"hra"`
	Allowance   float64  `json:"allowance"`
	PFPercent   *float64 `json:"pf_percent,omitempty"`
	ESIPercent  *float64 `json:"esi_percent,omitempty"`
	PT          *float64 `json:"pt,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.JoinDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if r.HRA < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hra",
			Message: "hra must not be negative",
		})
	}

	if r.Allowance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowance",
			Message: "allowance must not be negative",
		})
	}

	if r.PFPercent != nil && *r.PFPercent < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pf_percent",
			Message: "pf_percent must not be negative",
		})
	}

	if r.ESIPercent != nil && *r.ESIPercent < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "esi_percent",
			Message: "esi_percent must not be negative",
		})
	}

	if r.PT != nil && *r.PT < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pt",
			Message: "pt must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial update. emp_id is immutable
// and not part of the request.
type UpdateEmployeeRequest struct {
	Name        *string  `json:"name,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Designation *string  `json:"designation,omitempty"`
	JoinDate    *string  `json:"join_date,omitempty"` // YYYY-MM-DD
	BasicSalary *float64 `json:"basic_salary,omitempty"`
	HRA         *float64 `json:"hra,omitempty"`
	Allowance   *float64 `json:"allowance,omitempty"`
	PFPercent   *float64 `json:"pf_percent,omitempty"`
	ESIPercent  *float64 `json:"esi_percent,omitempty"`
	PT          *float64 `json:"pt,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.HasChanges() {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
		return errs
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be blank",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be blank",
		})
	}

	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation must not be blank",
		})
	}

	if r.JoinDate != nil {
		if _, valid := validator.IsValidDate(*r.JoinDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.BasicSalary != nil && *r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if r.HRA != nil && *r.HRA < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hra",
			Message: "hra must not be negative",
		})
	}

	if r.Allowance != nil && *r.Allowance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowance",
			Message: "allowance must not be negative",
		})
	}

	if r.PFPercent != nil && *r.PFPercent < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pf_percent",
			Message: "pf_percent must not be negative",
		})
	}

	if r.ESIPercent != nil && *r.ESIPercent < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "esi_percent",
			Message: "esi_percent must not be negative",
		})
	}

	if r.PT != nil && *r.PT < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pt",
			Message: "pt must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasChanges reports whether any updatable field is set.
func (r *UpdateEmployeeRequest) HasChanges() bool {
	return r.Name != nil ||
		r.Department != nil ||
		r.Designation != nil ||
		r.JoinDate != nil ||
		r.BasicSalary != nil ||
		r.HRA != nil ||
		r.Allowance != nil ||
		r.PFPercent != nil ||
		r.ESIPercent != nil ||
		r.PT != nil
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	EmpID       string  `json:"emp_id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	JoinDate    string  `json:"join_date"`
	BasicSalary float64 `json:"basic_salary"`
	HRA         float64 `json:"hra"`
	Allowance   float64 `json:"allowance"`
	PFPercent   float64 `json:"pf_percent"`
	ESIPercent  float64 `json:"esi_percent"`
	PT          float64 `json:"pt"`
	CreatedAt   string  `json:"created_at"`
}
