package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	JobsCollection  = "jobs"
	CVCollection    = "cv"
	UsersCollection = "users"

	titleCategoryIndex = "titleCategory"
	uniqueEmailIndex   = "uniqueEmail"
)

// EnsureIndexes creates the jobs title+category index and the unique user email index.
// A legacy users collection holding duplicate emails cannot take the unique index;
// that case is logged and registration falls back to the lookup-before-insert check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(JobsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}, {Key: "category", Value: 1}},
		Options: options.Index().SetName(titleCategoryIndex),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", titleCategoryIndex, err)
	}
	_, err = db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Email", Value: 1}},
		Options: options.Index().SetName(uniqueEmailIndex).SetUnique(true),
	})
	if err != nil {
		log.Printf("warning: %s index not created, email uniqueness is best-effort: %v", uniqueEmailIndex, err)
	}
	return nil
}

// normalize converts decoded BSON values into plain Go values so they
// serialise to JSON the same way regardless of the store.
func normalize(v any) any {
	switch t := v.(type) {
	case primitive.M:
		return normalizeMap(t)
	case map[string]any:
		return normalizeMap(t)
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case primitive.A:
		return normalizeSlice(t)
	case []any:
		return normalizeSlice(t)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalizeSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = normalize(v)
	}
	return out
}

func hexID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
