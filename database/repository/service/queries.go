package serviceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawcare/models"
)

func (r *mongoServiceRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoServiceRepo) ReplaceAvailability(ctx context.Context, serviceID string, avail []models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": serviceID},
		bson.M{"$set": bson.M{"availability": avail}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetSlotStatus performs the compare-and-set that arbitrates concurrent
// bookings: the filtered positional update matches the slot only while it is
// still in the from state, so two clients racing for one slot cannot both
// win.
func (r *mongoServiceRepo) SetSlotStatus(ctx context.Context, serviceID, day, slotID, from, to string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Stored slots omit the status field while free.
	var fromFilter interface{} = from
	if from == models.SlotStatusFree {
		fromFilter = bson.M{"$in": bson.A{nil, "", models.SlotStatusFree}}
	}

	var toValue interface{} = to
	update := bson.M{"$set": bson.M{"availability.$[dayElem].slots.$[slotElem].status": toValue}}
	if to == models.SlotStatusFree {
		update = bson.M{"$unset": bson.M{"availability.$[dayElem].slots.$[slotElem].status": ""}}
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"dayElem.day": day},
			bson.M{"slotElem.id": slotID, "slotElem.status": fromFilter},
		},
	})

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": serviceID}, update, opts)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	if res.ModifiedCount == 0 {
		return ErrSlotConflict
	}
	return nil
}
