package repository

import (
	"context"

	"github.com/gestorhq/gestor-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TimelineRepo interface {
	CreateEvent(ctx context.Context, event *types.TimelineEvent) error
	ListEvents(ctx context.Context, teamID string, limit int64) ([]*types.TimelineEvent, error)
}

type timelineRepo struct {
	collection *mongo.Collection
}

func NewTimelineRepo(collection *mongo.Collection) TimelineRepo {
	return &timelineRepo{
		collection: collection,
	}
}

func (r *timelineRepo) CreateEvent(ctx context.Context, event *types.TimelineEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *timelineRepo) ListEvents(ctx context.Context, teamID string, limit int64) ([]*types.TimelineEvent, error) {
	filter := make(map[string]interface{})
	if teamID != "" {
		filter["team_id"] = teamID
	}
	opts := options.Find().SetSort(map[string]interface{}{"timestamp": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*types.TimelineEvent
	for cursor.Next(ctx) {
		var event types.TimelineEvent
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, nil
}
