package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

const collectionSessions = "training_sessions"

// TrainingSessionRepository persists session records.
type TrainingSessionRepository struct {
	col *mongo.Collection
}

func NewTrainingSessionRepository(db *mongo.Database) *TrainingSessionRepository {
	return &TrainingSessionRepository{col: db.Collection(collectionSessions)}
}

func (r *TrainingSessionRepository) Create(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert training session: %w", err)
	}
	return s, nil
}

func (r *TrainingSessionRepository) FindByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.TrainingSession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrainingSessionNotFound
		}
		return nil, fmt.Errorf("find training session: %w", err)
	}
	return &s, nil
}

func (r *TrainingSessionRepository) Update(ctx context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return nil, fmt.Errorf("update training session: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTrainingSessionNotFound
	}
	return s, nil
}

func (r *TrainingSessionRepository) List(ctx context.Context, filter ports.TrainingSessionFilter) ([]*domain.TrainingSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.TrainerID != "" {
		query["trainer_id"] = filter.TrainerID
	}
	if filter.DogID != "" {
		query["dog_id"] = filter.DogID
	}
	if filter.BookingID != "" {
		query["booking_id"] = filter.BookingID
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []*domain.TrainingSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode training sessions: %w", err)
	}
	return sessions, nil
}
