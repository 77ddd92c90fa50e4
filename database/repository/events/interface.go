// File: database/repository/events/interface.go
package eventsRepo

import (
	"context"
	"time"

	"tailortalk/database"
	"tailortalk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository persists calendar events.
type EventRepository interface {
	Insert(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListRange(ctx context.Context, start, end time.Time) ([]models.Event, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("tailortalk")
	return &mongoEventRepo{
		coll: db.Collection("events"),
	}
}
