// Package fixtures holds the demo dataset loaded by the sample data
// endpoint: five employees across departments and one month of
// attendance for each.
package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
)

// SampleMonth is the attendance month the demo dataset covers.
const SampleMonth = "2025-01"

// SampleEmployees returns the demo employees. IDs and creation times
// are left zero for the repository to stamp.
func SampleEmployees() []employee.Employee {
	defaults := struct {
		pfPercent  decimal.Decimal
		esiPercent decimal.Decimal
		pt         decimal.Decimal
	}{
		pfPercent:  decimal.NewFromFloat(employee.DefaultPFPercent),
		esiPercent: decimal.NewFromFloat(employee.DefaultESIPercent),
		pt:         decimal.NewFromFloat(employee.DefaultPT),
	}

	sample := func(empID, name, department, designation, joinDate string, basic, hra, allowance int64) employee.Employee {
		return employee.Employee{
			EmpID:       empID,
			Name:        name,
			Department:  department,
			Designation: designation,
			JoinDate:    joinDate,
			BasicSalary: decimal.NewFromInt(basic),
			HRA:         decimal.NewFromInt(hra),
			Allowance:   decimal.NewFromInt(allowance),
			PFPercent:   defaults.pfPercent,
			ESIPercent:  defaults.esiPercent,
			PT:          defaults.pt,
		}
	}

	return []employee.Employee{
		sample("EMP001", "Rajesh Kumar", "Engineering", "Senior Software Engineer", "2022-01-15", 40000, 16000, 8000),
		sample("EMP002", "Priya Sharma", "HR", "HR Manager", "2021-06-10", 35000, 14000, 6000),
		sample("EMP003", "Amit Patel", "Finance", "Accountant", "2023-03-20", 30000, 12000, 5000),
		sample("EMP004", "Sneha Reddy", "Marketing", "Marketing Executive", "2022-09-01", 28000, 11200, 4500),
		sample("EMP005", "Vikram Singh", "Operations", "Operations Manager", "2020-11-15", 38000, 15200, 7000),
	}
}

// SampleAttendance returns one month of attendance for every demo
// employee, including a mix of full presence, paid leave and LOP.
func SampleAttendance() []attendance.Attendance {
	sample := func(empID string, present, leave, lop int) attendance.Attendance {
		return attendance.Attendance{
			EmpID:            empID,
			Month:            SampleMonth,
			TotalWorkingDays: 22,
			PresentDays:      present,
			LeaveDays:        leave,
			LOPDays:          lop,
		}
	}

	return []attendance.Attendance{
		sample("EMP001", 20, 2, 0),
		sample("EMP002", 22, 0, 0),
		sample("EMP003", 19, 2, 1),
		sample("EMP004", 21, 1, 0),
		sample("EMP005", 20, 1, 1),
	}
}
