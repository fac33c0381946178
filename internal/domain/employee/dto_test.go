package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/hrpay-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmpID:       "EMP001",
		Name:        "Rajesh Kumar",
		Department:  "Engineering",
		Designation: "Senior Software Engineer",
		JoinDate:    "2022-01-15",
		BasicSalary: 40000,
		HRA:         16000,
		Allowance:   8000,
	}
}

func TestCreateEmployeeRequest_Validate_Success(t *testing.T) {
	req := validCreateRequest()

	// Act
	err := req.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestCreateEmployeeRequest_Validate_MissingFields(t *testing.T) {
	req := CreateEmployeeRequest{}

	// Act
	err := req.Validate()

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	for _, field := range []string{"emp_id", "name", "department", "designation", "join_date"} {
		assert.Contains(t, details, field)
	}
}

func TestCreateEmployeeRequest_Validate_BadJoinDate(t *testing.T) {
	badDates := []string{"15-01-2022", "2022/01/15", "2022-13-01", "january", "2022-01"}

	for _, joinDate := range badDates {
		req := validCreateRequest()
		req.JoinDate = joinDate

		// Act
		err := req.Validate()

		// Assert
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs, "join_date %q should be rejected", joinDate)
		assert.Contains(t, errs.ToMap(), "join_date")
	}
}

func TestCreateEmployeeRequest_Validate_NegativeFigures(t *testing.T) {
	negative := -1.0

	cases := map[string]func(*CreateEmployeeRequest){
		"basic_salary": func(r *CreateEmployeeRequest) { r.BasicSalary = -100 },
		"hra":          func(r *CreateEmployeeRequest) { r.HRA = -1 },
		"allowance":    func(r *CreateEmployeeRequest) { r.Allowance = -0.5 },
		"pf_percent":   func(r *CreateEmployeeRequest) { r.PFPercent = &negative },
		"esi_percent":  func(r *CreateEmployeeRequest) { r.ESIPercent = &negative },
		"pt":           func(r *CreateEmployeeRequest) { r.PT = &negative },
	}

	for field, mutate := range cases {
		req := validCreateRequest()
		mutate(&req)

		// Act
		err := req.Validate()

		// Assert
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs, "negative %s should be rejected", field)
		assert.Contains(t, errs.ToMap(), field)
	}
}

func TestCreateEmployeeRequest_Validate_ZeroRatesAllowed(t *testing.T) {
	zero := 0.0
	req := validCreateRequest()
	req.PFPercent = &zero
	req.ESIPercent = &zero
	req.PT = &zero

	// Act
	err := req.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestUpdateEmployeeRequest_Validate_NoChanges(t *testing.T) {
	req := UpdateEmployeeRequest{}

	// Act
	err := req.Validate()

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "body")
	assert.False(t, req.HasChanges())
}

func TestUpdateEmployeeRequest_Validate_BlankName(t *testing.T) {
	blank := "   "
	req := UpdateEmployeeRequest{Name: &blank}

	// Act
	err := req.Validate()

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "name")
}

func TestUpdateEmployeeRequest_Validate_SingleField(t *testing.T) {
	salary := 45000.0
	req := UpdateEmployeeRequest{BasicSalary: &salary}

	// Act
	err := req.Validate()

	// Assert
	assert.NoError(t, err)
	assert.True(t, req.HasChanges())
}

func TestUpdateEmployeeRequest_Validate_BadJoinDate(t *testing.T) {
	badDate := "01-2022-15"
	req := UpdateEmployeeRequest{JoinDate: &badDate}

	// Act
	err := req.Validate()

	// Assert
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "join_date")
}
