package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	EmpID       string
	Name        string
	Department  string
	Designation string
	JoinDate    string
	BasicSalary decimal.Decimal
	HRA         decimal.Decimal
	Allowance   decimal.Decimal
	PFPercent   decimal.Decimal
	ESIPercent  decimal.Decimal
	PT          decimal.Decimal
	CreatedAt   time.Time
}

// Statutory defaults applied when a create request leaves the
// deduction parameters unset.
const (
	DefaultPFPercent  = 12.0
	DefaultESIPercent = 0.75
	DefaultPT         = 200.0
)
