package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffledger/hrpay-backend-go/internal/domain/employee"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// employeeDocument is the stored form of an Employee. Money figures are
// kept as doubles; the mapping layer converts to decimals so the domain
// never sees binary floating point arithmetic.
type employeeDocument struct {
	ID          string    `bson:"id"`
	EmpID       string    `bson:"emp_id"`
	Name        string    `bson:"name"`
	Department  string    `bson:"department"`
	Designation string    `bson:"designation"`
	JoinDate    string    `bson:"join_date"`
	BasicSalary float64   `bson:"basic_salary"`
	HRA         float64   `bson:"hra"`
	Allowance   float64   `bson:"allowance"`
	PFPercent   float64   `bson:"pf_percent"`
	ESIPercent  float64   `bson:"esi_percent"`
	PT          float64   `bson:"pt"`
	CreatedAt   time.Time `bson:"created_at"`
}

func newEmployeeDocument(e employee.Employee) employeeDocument {
	return employeeDocument{
		ID:          e.ID,
		EmpID:       e.EmpID,
		Name:        e.Name,
		Department:  e.Department,
		Designation: e.Designation,
		JoinDate:    e.JoinDate,
		BasicSalary: e.BasicSalary.InexactFloat64(),
		HRA:         e.HRA.InexactFloat64(),
		Allowance:   e.Allowance.InexactFloat64(),
		PFPercent:   e.PFPercent.InexactFloat64(),
		ESIPercent:  e.ESIPercent.InexactFloat64(),
		PT:          e.PT.InexactFloat64(),
		CreatedAt:   e.CreatedAt,
	}
}

func (d employeeDocument) toEntity() employee.Employee {
	return employee.Employee{
		ID:          d.ID,
		EmpID:       d.EmpID,
		Name:        d.Name,
		Department:  d.Department,
		Designation: d.Designation,
		JoinDate:    d.JoinDate,
		BasicSalary: decimal.NewFromFloat(d.BasicSalary),
		HRA:         decimal.NewFromFloat(d.HRA),
		Allowance:   decimal.NewFromFloat(d.Allowance),
		PFPercent:   decimal.NewFromFloat(d.PFPercent),
		ESIPercent:  decimal.NewFromFloat(d.ESIPercent),
		PT:          decimal.NewFromFloat(d.PT),
		CreatedAt:   d.CreatedAt,
	}
}

// Create implements employee.EmployeeRepository. The unique index on
// emp_id makes duplicate rejection atomic.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	if newEmployee.CreatedAt.IsZero() {
		newEmployee.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Employees().InsertOne(ctx, newEmployeeDocument(newEmployee))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	var doc employeeDocument
	err := r.db.Employees().FindOne(ctx, bson.M{"emp_id": empID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", empID, err)
	}

	return doc.toEntity(), nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "emp_id", Value: 1}})
	cursor, err := r.db.Employees().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, doc.toEntity())
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. Only the fields set on
// the request are written; emp_id is never touched.
func (r *employeeRepositoryImpl) Update(ctx context.Context, empID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Designation != nil {
		set["designation"] = *req.Designation
	}
	if req.JoinDate != nil {
		set["join_date"] = *req.JoinDate
	}
	if req.BasicSalary != nil {
		set["basic_salary"] = *req.BasicSalary
	}
	if req.HRA != nil {
		set["hra"] = *req.HRA
	}
	if req.Allowance != nil {
		set["allowance"] = *req.Allowance
	}
	if req.PFPercent != nil {
		set["pf_percent"] = *req.PFPercent
	}
	if req.ESIPercent != nil {
		set["esi_percent"] = *req.ESIPercent
	}
	if req.PT != nil {
		set["pt"] = *req.PT
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err := r.db.Employees().FindOneAndUpdate(ctx, bson.M{"emp_id": empID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", empID, err)
	}

	return doc.toEntity(), nil
}

// Delete implements employee.EmployeeRepository. Attendance records for
// the employee are not removed.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, empID string) error {
	result, err := r.db.Employees().DeleteOne(ctx, bson.M{"emp_id": empID})
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", empID, err)
	}
	if result.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	count, err := r.db.Employees().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
