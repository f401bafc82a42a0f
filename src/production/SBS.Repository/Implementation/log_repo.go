package implementation

import (
	"context"
	"time"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoLogRepository struct {
	coll *mongo.Collection
}

func NewMongoLogRepository(coll *mongo.Collection) *MongoLogRepository {
	return &MongoLogRepository{coll: coll}
}

func (r *MongoLogRepository) Append(ctx context.Context, rd sbsmodels.Reading) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, rd)
	return err
}
