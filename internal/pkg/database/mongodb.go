package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	EmployeesCollection  = "employees"
	AttendanceCollection = "attendance"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, url, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) Employees() *mongo.Collection {
	return db.Database.Collection(EmployeesCollection)
}

func (db *DB) Attendance() *mongo.Collection {
	return db.Database.Collection(AttendanceCollection)
}

// EnsureIndexes creates the unique indexes the repositories rely on for
// atomic duplicate rejection: employees.emp_id and attendance
// (emp_id, month).
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Employees().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "emp_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create employees emp_id index: %w", err)
	}

	_, err = db.Attendance().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "emp_id", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance emp_id/month index: %w", err)
	}

	return nil
}
