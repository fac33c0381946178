package mongodb_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/database"
)

const testDatabaseName = "hrpay_test"

// newTestDB connects to the MongoDB named by TEST_MONGO_URL and hands
// back a clean database. Tests are skipped when the variable is unset
// so the unit suite stays runnable without a live server.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set, skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, url, testDatabaseName)
	require.NoError(t, err)

	// Dropping the collections also drops their indexes, so recreate them.
	require.NoError(t, db.Employees().Drop(ctx))
	require.NoError(t, db.Attendance().Drop(ctx))
	require.NoError(t, db.EnsureIndexes(ctx))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Employees().Drop(ctx)
		_ = db.Attendance().Drop(ctx)
		_ = db.Close(ctx)
	})

	return db
}

func newTestEmployee(empID, name string) employee.Employee {
	return employee.Employee{
		EmpID:       empID,
		Name:        name,
		Department:  "Engineering",
		Designation: "Software Engineer",
		JoinDate:    "2022-01-15",
		BasicSalary: decimal.NewFromInt(40000),
		HRA:         decimal.NewFromInt(16000),
		Allowance:   decimal.NewFromInt(8000),
		PFPercent:   decimal.NewFromInt(12),
		ESIPercent:  decimal.NewFromFloat(0.75),
		PT:          decimal.NewFromInt(200),
	}
}

func newTestAttendance(empID, month string) attendance.Attendance {
	return attendance.Attendance{
		EmpID:            empID,
		Month:            month,
		TotalWorkingDays: 22,
		PresentDays:      20,
		LeaveDays:        2,
		LOPDays:          0,
	}
}
