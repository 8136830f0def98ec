package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

const collectionDogs = "dogs"

// DogRepository persists dog profiles in the dogs collection.
type DogRepository struct {
	col *mongo.Collection
}

func NewDogRepository(db *mongo.Database) *DogRepository {
	return &DogRepository{col: db.Collection(collectionDogs)}
}

func (r *DogRepository) Create(ctx context.Context, d *domain.Dog) (*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert dog: %w", err)
	}
	return d, nil
}

func (r *DogRepository) FindByID(ctx context.Context, id string) (*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Dog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDogNotFound
		}
		return nil, fmt.Errorf("find dog: %w", err)
	}
	return &d, nil
}

func (r *DogRepository) Update(ctx context.Context, d *domain.Dog) (*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return nil, fmt.Errorf("update dog: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDogNotFound
	}
	return d, nil
}

func (r *DogRepository) List(ctx context.Context, filter ports.DogFilter) ([]*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"breed": pattern},
		}
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer cursor.Close(ctx)

	var dogs []*domain.Dog
	if err := cursor.All(ctx, &dogs); err != nil {
		return nil, fmt.Errorf("decode dogs: %w", err)
	}
	return dogs, nil
}

func (r *DogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete dog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}
