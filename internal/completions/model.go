package completions

import "go.mongodb.org/mongo-driver/bson/primitive"

// Completion is the archived record of a graded submission.
type Completion struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssignmentTitle string             `bson:"assignmentTitle" json:"assignmentTitle"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	Marks           float64            `bson:"marks" json:"marks"`
	Feedback        string             `bson:"feedback" json:"feedback"`
	Status          string             `bson:"status" json:"status"`
}
