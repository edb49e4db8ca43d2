package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo defaults.
const (
	DefaultMongoDatabase   = "overlaykit"
	DefaultMongoCollection = "scenes"
)

// MongoConfig configures [NewMongoStore].
type MongoConfig struct {
	// URI is a MongoDB connection string, e.g. mongodb://localhost:27017.
	URI        string
	Database   string
	Collection string
	// ConnectTimeout bounds the initial connect and ping (default 5s).
	ConnectTimeout time.Duration
}

// MongoStore keeps records in a MongoDB collection, one document per scene.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo: empty URI")
	}
	if cfg.Database == "" {
		cfg.Database = DefaultMongoDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultMongoCollection
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return NewMongoStoreFromClient(client, cfg.Database, cfg.Collection), nil
}

// NewMongoStoreFromClient wraps an existing client.
func NewMongoStoreFromClient(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{client: client, coll: client.Database(database).Collection(collection)}
}

func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	if rec.ID != "" {
		if err := validID(rec.ID); err != nil {
			return err
		}
		if rec.CreatedAt.IsZero() {
			if old, err := s.Get(ctx, rec.ID); err == nil {
				rec.CreatedAt = old.CreatedAt
			}
		}
	}
	stamp(rec, time.Now().UTC().Truncate(time.Millisecond))

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return fmt.Errorf("mongo put %s: %w", rec.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get %s: %w", id, err)
	}
	return &rec, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
