package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trademate/internal/model"
)

// AppointmentRepo handles MongoDB operations for native appointments
type AppointmentRepo interface {
	Create(ctx context.Context, appt *model.Appointment) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Appointment, error)
}

type appointmentRepo struct {
	collection *mongo.Collection
}

// NewAppointmentRepo creates a new appointment repository
func NewAppointmentRepo(db *mongo.Database) AppointmentRepo {
	return &appointmentRepo{
		collection: db.Collection("appointments"),
	}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *model.Appointment) error {
	result, err := r.collection.InsertOne(ctx, appt)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		appt.ID = oid.Hex()
	}
	return nil
}

func (r *appointmentRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Appointment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []*model.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
