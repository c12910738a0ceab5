package repository

import (
	"context"

	"github.com/gestorhq/gestor-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ProjectRepo interface {
	CreateProject(ctx context.Context, project *types.Project) error
	GetProject(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context, teamID string, status []string) ([]*types.Project, error)
}

type projectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(collection *mongo.Collection) ProjectRepo {
	return &projectRepo{
		collection: collection,
	}
}

func (r *projectRepo) CreateProject(ctx context.Context, project *types.Project) error {
	_, err := r.collection.InsertOne(ctx, project)
	return err
}

func (r *projectRepo) GetProject(ctx context.Context, id string) (*types.Project, error) {
	var project types.Project
	err := r.collection.FindOne(ctx, map[string]string{"_id": id}).Decode(&project)
	return &project, err
}

func (r *projectRepo) ListProjects(ctx context.Context, teamID string, status []string) ([]*types.Project, error) {
	filter := make(map[string]interface{})
	if teamID != "" {
		filter["team_id"] = teamID
	}
	if len(status) > 0 {
		filter["status"] = map[string]interface{}{"$in": status}
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*types.Project
	for cursor.Next(ctx) {
		var project types.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}
	return projects, nil
}
