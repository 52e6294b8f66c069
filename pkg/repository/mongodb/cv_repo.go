package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/cv"
)

// CVRepository appends submissions to the cv collection.
type CVRepository struct {
	coll *mongo.Collection
}

func NewCVRepository(db *mongo.Database) *CVRepository {
	return &CVRepository{coll: db.Collection(CVCollection)}
}

type cvDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       primitive.ObjectID `bson:"jobId"`
	Email       string             `bson:"email"`
	CVURL       string             `bson:"cvUrl,omitempty"`
	Text        string             `bson:"text,omitempty"`
	Match       *bool              `bson:"match,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

func (r *CVRepository) Insert(ctx context.Context, s cv.Submission) (string, error) {
	jobID, err := primitive.ObjectIDFromHex(s.JobID)
	if err != nil {
		return "", apperr.InvalidID(s.JobID)
	}
	res, err := r.coll.InsertOne(ctx, cvDoc{
		JobID:       jobID,
		Email:       s.Email,
		CVURL:       s.CVURL,
		Text:        s.Text,
		Match:       s.Match,
		SubmittedAt: s.SubmittedAt,
	})
	if err != nil {
		return "", err
	}
	return hexID(res.InsertedID), nil
}
