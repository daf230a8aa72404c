package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawcare/models"
)

func (r *mongoAppointmentRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": bson.A{models.AppointmentBooked, models.AppointmentInProgress, models.AppointmentCompleted}},
	})
}

func (r *mongoAppointmentRepo) GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"clientId": clientID,
		"status":   bson.M{"$in": bson.A{models.AppointmentBooked, models.AppointmentInProgress, models.AppointmentCompleted}},
	})
}

func (r *mongoAppointmentRepo) FindExpiredHolds(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"status":        models.AppointmentPending,
		"holdExpiresAt": bson.M{"$lte": now},
	})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "slot.startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
