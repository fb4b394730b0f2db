package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoKV keeps one Mongo document per key: {_id: key, value: <raw>, updatedAt}.
// SetMany issues a single ordered BulkWrite; it is not transactional across
// documents.
type MongoKV struct {
	col *mongo.Collection
}

type kvRecord struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func NewMongoKV(col *mongo.Collection) *MongoKV {
	return &MongoKV{col: col}
}

func (m *MongoKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec kvRecord
	if err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mongo get %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

func (m *MongoKV) Set(ctx context.Context, key string, value []byte) error {
	opts := options.Update().SetUpsert(true)
	set := bson.M{"$set": bson.M{"value": string(value), "updatedAt": time.Now().UTC()}}
	if _, err := m.col.UpdateOne(ctx, bson.M{"_id": key}, set, opts); err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}

func (m *MongoKV) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(values))
	for k, v := range values {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": k}).
			SetUpdate(bson.M{"$set": bson.M{"value": string(v), "updatedAt": now}}).
			SetUpsert(true))
	}
	if _, err := m.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("mongo bulk set: %w", err)
	}
	return nil
}

func (m *MongoKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := m.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
	return err
}
