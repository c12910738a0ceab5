package repository

import (
	"context"

	"github.com/gestorhq/gestor-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, task *types.Task) error
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasks(ctx context.Context, teamID, assignee string, status []string) ([]*types.Task, error)
}

type taskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(collection *mongo.Collection) TaskRepo {
	return &taskRepo{
		collection: collection,
	}
}

func (r *taskRepo) CreateTask(ctx context.Context, task *types.Task) error {
	_, err := r.collection.InsertOne(ctx, task)
	return err
}

func (r *taskRepo) GetTask(ctx context.Context, id string) (*types.Task, error) {
	var task types.Task
	err := r.collection.FindOne(ctx, map[string]string{"_id": id}).Decode(&task)
	return &task, err
}

func (r *taskRepo) ListTasks(ctx context.Context, teamID, assignee string, status []string) ([]*types.Task, error) {
	filter := make(map[string]interface{})
	if teamID != "" {
		filter["team_id"] = teamID
	}
	if assignee != "" {
		filter["assignee"] = assignee
	}
	if len(status) > 0 {
		filter["status"] = map[string]interface{}{"$in": status}
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*types.Task
	for cursor.Next(ctx) {
		var task types.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}
	return tasks, nil
}
