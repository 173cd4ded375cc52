package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmustafaberkaykrgz/AIVisionHire/internal/interview"
	"github.com/mmustafaberkaykrgz/AIVisionHire/pkg/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InterviewRepository persists interview records in a Mongo collection. It is
// the production implementation of interview.Store.
type InterviewRepository struct {
	col *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) *InterviewRepository {
	col := db.Collection("interviews")

	// Index backing the owner-scoped history query.
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})

	return &InterviewRepository{col: col}
}

func (r *InterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	if _, err := r.col.InsertOne(ctx, iv); err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var iv model.Interview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find interview: %w", err)
	}
	return &iv, nil
}

// FindCompletedByOwner returns the submitted history for a user. Records written
// before the status field existed are included when they carry completion
// evidence: non-nil feedback, at least one answer, or a nonzero score.
func (r *InterviewRepository) FindCompletedByOwner(ctx context.Context, userID string) ([]model.InterviewSummary, error) {
	filter := bson.M{
		"user_id": userID,
		"$or": bson.A{
			bson.M{"status": model.StatusSubmitted},
			bson.M{
				"status": bson.M{"$exists": false},
				"$or": bson.A{
					bson.M{"feedback": bson.M{"$ne": nil}},
					bson.M{"answers.0": bson.M{"$exists": true}},
					bson.M{"score": bson.M{"$gt": 0}},
				},
			},
		},
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "field": 1, "difficulty": 1, "score": 1, "status": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer cur.Close(ctx)

	out := []model.InterviewSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode interviews: %w", err)
	}
	return out, nil
}

// ConditionalUpdate applies update only when the record's status still equals
// expected. The status check and the write are a single Mongo operation, which
// is what makes racing submit/abandon transitions resolve to one winner.
func (r *InterviewRepository) ConditionalUpdate(ctx context.Context, id string, expected model.InterviewStatus, update map[string]interface{}) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": expected},
		bson.M{"$set": update},
	)
	if err != nil {
		return false, fmt.Errorf("update interview: %w", err)
	}
	return res.MatchedCount > 0, nil
}
