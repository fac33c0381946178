package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffledger/hrpay-backend-go/internal/domain/attendance"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

type attendanceDocument struct {
	ID               string    `bson:"id"`
	EmpID            string    `bson:"emp_id"`
	Month            string    `bson:"month"`
	TotalWorkingDays int       `bson:"total_working_days"`
	PresentDays      int       `bson:"present_days"`
	LeaveDays        int       `bson:"leave_days"`
	LOPDays          int       `bson:"lop_days"`
	CreatedAt        time.Time `bson:"created_at"`
}

func newAttendanceDocument(a attendance.Attendance) attendanceDocument {
	return attendanceDocument{
		ID:               a.ID,
		EmpID:            a.EmpID,
		Month:            a.Month,
		TotalWorkingDays: a.TotalWorkingDays,
		PresentDays:      a.PresentDays,
		LeaveDays:        a.LeaveDays,
		LOPDays:          a.LOPDays,
		CreatedAt:        a.CreatedAt,
	}
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	return attendance.Attendance{
		ID:               d.ID,
		EmpID:            d.EmpID,
		Month:            d.Month,
		TotalWorkingDays: d.TotalWorkingDays,
		PresentDays:      d.PresentDays,
		LeaveDays:        d.LeaveDays,
		LOPDays:          d.LOPDays,
		CreatedAt:        d.CreatedAt,
	}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (emp_id, month) makes duplicate rejection atomic.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	if newAttendance.ID == "" {
		newAttendance.ID = uuid.NewString()
	}
	if newAttendance.CreatedAt.IsZero() {
		newAttendance.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Attendance().InsertOne(ctx, newAttendanceDocument(newAttendance))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmpIDAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmpIDAndMonth(ctx context.Context, empID, month string) (attendance.Attendance, error) {
	var doc attendanceDocument
	err := r.db.Attendance().FindOne(ctx, bson.M{"emp_id": empID, "month": month}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for %s/%s: %w", empID, month, err)
	}

	return doc.toEntity(), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "emp_id", Value: 1}, {Key: "month", Value: 1}})
	return r.findAll(ctx, bson.M{}, opts)
}

// ListByEmpID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmpID(ctx context.Context, empID string) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}})
	return r.findAll(ctx, bson.M{"emp_id": empID}, opts)
}

func (r *attendanceRepositoryImpl) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]attendance.Attendance, error) {
	cursor, err := r.db.Attendance().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toEntity())
	}

	return records, nil
}

// Update implements attendance.AttendanceRepository. Only the fields set
// on the request are written; emp_id and month are never touched.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, empID, month string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	set := bson.M{}
	if req.TotalWorkingDays != nil {
		set["total_working_days"] = *req.TotalWorkingDays
	}
	if req.PresentDays != nil {
		set["present_days"] = *req.PresentDays
	}
	if req.LeaveDays != nil {
		set["leave_days"] = *req.LeaveDays
	}
	if req.LOPDays != nil {
		set["lop_days"] = *req.LOPDays
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc attendanceDocument
	err := r.db.Attendance().FindOneAndUpdate(ctx, bson.M{"emp_id": empID, "month": month}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance for %s/%s: %w", empID, month, err)
	}

	return doc.toEntity(), nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, empID, month string) error {
	result, err := r.db.Attendance().DeleteOne(ctx, bson.M{"emp_id": empID, "month": month})
	if err != nil {
		return fmt.Errorf("failed to delete attendance for %s/%s: %w", empID, month, err)
	}
	if result.DeletedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
