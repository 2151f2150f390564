package submissions

import "go.mongodb.org/mongo-driver/bson/primitive"

// StatusPending is the only status ever written by this service; grading is
// recorded by removing the submission and inserting a completion instead of
// transitioning this field.
const StatusPending = "pending"

// Submission carries denormalized copies of the assignment title and marks;
// there is no reference back to the assignments collection.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PdfLink         string             `bson:"pdfLink" json:"pdfLink"`
	QuickNote       string             `bson:"quickNote" json:"quickNote"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	AssignmentTitle string             `bson:"assignmentTitle" json:"assignmentTitle"`
	AssignmentMarks float64            `bson:"assignmentMarks" json:"assignmentMarks"`
	Status          string             `bson:"status" json:"status"`
}
