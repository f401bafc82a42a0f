package implementation

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// logTimerDocID is the fixed key of the single global throttle marker.
const logTimerDocID = "log_timer"

type logTimerDoc struct {
	LastTime string `bson:"last_time"`
}

type MongoThrottleRepository struct {
	coll *mongo.Collection
}

func NewMongoThrottleRepository(coll *mongo.Collection) *MongoThrottleRepository {
	return &MongoThrottleRepository{coll: coll}
}

func (r *MongoThrottleRepository) GetLastLogTime(ctx context.Context) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var doc logTimerDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": logTimerDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.LastTime, true, nil
}

func (r *MongoThrottleRepository) SetLastLogTime(ctx context.Context, ts string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": logTimerDocID}, bson.M{"$set": bson.M{"last_time": ts}}, opts)
	return err
}
