package assignments

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"groupstudy_backend/internal/storage"
)

const collectionName = "assignments"

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		col: db.Collection(collectionName),
	}
}

func (r *Repository) Insert(ctx context.Context, a *Assignment) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// List returns assignments filtered by difficulty. An empty or "all"
// difficulty returns the whole collection.
func (r *Repository) List(ctx context.Context, difficulty string) ([]Assignment, error) {
	filter := bson.M{}
	if difficulty != "" && difficulty != "all" {
		filter["difficulty"] = difficulty
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	out := make([]Assignment, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse assignment id: %w", err)
	}
	var a Assignment
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// Replace overwrites every field of the document at id from a, creating the
// document when the id is absent. Fields missing from the incoming body are
// written as zero values.
func (r *Repository) Replace(ctx context.Context, id string, a *Assignment) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse assignment id: %w", err)
	}
	update := bson.M{"$set": bson.M{
		"title":        a.Title,
		"description":  a.Description,
		"marks":        a.Marks,
		"difficulty":   a.Difficulty,
		"dueDate":      a.DueDate,
		"thumbnailUrl": a.ThumbnailUrl,
		"createdBy":    a.CreatedBy,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("replace assignment: %w", err)
	}
	return res, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("parse assignment id: %w", err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete assignment: %w", err)
	}
	return res.DeletedCount, nil
}
