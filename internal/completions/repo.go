package completions

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "completed"

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		col: db.Collection(collectionName),
	}
}

func (r *Repository) Insert(ctx context.Context, c *Completion) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userEmail string) ([]Completion, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	out := make([]Completion, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode completions: %w", err)
	}
	return out, nil
}
