package serviceRepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"pawcare/database"
)

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by the "services"
// collection.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.Collection("services")}
}
