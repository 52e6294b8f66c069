package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/job"
)

// JobRepository stores postings as free-form documents in the jobs collection.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(JobsCollection)}
}

func (r *JobRepository) Insert(ctx context.Context, j job.Job) (string, error) {
	res, err := r.coll.InsertOne(ctx, bson.M(j.Document()))
	if err != nil {
		return "", err
	}
	return hexID(res.InsertedID), nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: job.KeyCreatedAt, Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return job.Job{}, apperr.InvalidID(id)
	}
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return toJob(doc), nil
}

func (r *JobRepository) ListByPoster(ctx context.Context, email string) ([]job.Job, error) {
	return r.find(ctx, bson.M{job.KeyPostedBy: email})
}

func (r *JobRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperr.InvalidID(id)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *JobRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]job.Job, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	jobs := make([]job.Job, 0, len(docs))
	for _, d := range docs {
		jobs = append(jobs, toJob(d))
	}
	return jobs, nil
}

func toJob(doc bson.M) job.Job {
	j := job.Job{ID: hexID(doc[job.KeyID]), Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case job.KeyID:
		case job.KeyCreatedAt:
			if t, ok := normalize(v).(time.Time); ok {
				j.CreatedAt = t
			}
		default:
			j.Fields[k] = normalize(v)
		}
	}
	return j
}
