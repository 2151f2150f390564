package submissions

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"groupstudy_backend/internal/storage"
)

const collectionName = "submitted"

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		col: db.Collection(collectionName),
	}
}

func (r *Repository) Insert(ctx context.Context, s *Submission) error {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

// ListPending returns the caller's not-yet-graded submissions.
func (r *Repository) ListPending(ctx context.Context, userEmail string) ([]Submission, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userEmail": userEmail, "status": StatusPending})
	if err != nil {
		return nil, fmt.Errorf("list pending submissions: %w", err)
	}
	out := make([]Submission, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse submission id: %w", err)
	}
	var s Submission
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &s, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("parse submission id: %w", err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete submission: %w", err)
	}
	return res.DeletedCount, nil
}
