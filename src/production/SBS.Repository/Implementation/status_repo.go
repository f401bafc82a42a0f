package implementation

import (
	"context"
	"errors"
	"time"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// latestDocID is the fixed key of the single latest-status document.
const latestDocID = "latest"

type MongoStatusRepository struct {
	coll *mongo.Collection
}

func NewMongoStatusRepository(coll *mongo.Collection) *MongoStatusRepository {
	return &MongoStatusRepository{coll: coll}
}

func (r *MongoStatusRepository) Put(ctx context.Context, rd sbsmodels.Reading) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": latestDocID}, rd, opts)
	return err
}

func (r *MongoStatusRepository) Get(ctx context.Context) (sbsmodels.Reading, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var rd sbsmodels.Reading
	err := r.coll.FindOne(ctx, bson.M{"_id": latestDocID}).Decode(&rd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return sbsmodels.Reading{}, false, nil
		}
		return sbsmodels.Reading{}, false, err
	}
	return rd, true, nil
}
