package repository

import (
	"context"

	"github.com/gestorhq/gestor-be/types"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	ListUsersByTeam(ctx context.Context, teamID string) ([]*types.User, error)
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(collection *mongo.Collection) UserRepo {
	return &userRepo{
		collection: collection,
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *types.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	var user types.User
	err := r.collection.FindOne(ctx, map[string]string{"_id": id}).Decode(&user)
	return &user, err
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	var user types.User
	err := r.collection.FindOne(ctx, map[string]string{"username": username}).Decode(&user)
	return &user, err
}

func (r *userRepo) ListUsersByTeam(ctx context.Context, teamID string) ([]*types.User, error) {
	cursor, err := r.collection.Find(ctx, map[string]string{"team_id": teamID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*types.User
	for cursor.Next(ctx) {
		var user types.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}
