package assignments

import "go.mongodb.org/mongo-driver/bson/primitive"

// Assignment is stored as-is in the assignments collection. Field names on
// the wire match the stored bson keys so documents round-trip unchanged.
type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Marks        float64            `bson:"marks" json:"marks"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	DueDate      string             `bson:"dueDate" json:"dueDate"`
	ThumbnailUrl string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	CreatedBy    string             `bson:"createdBy" json:"createdBy"`
}
