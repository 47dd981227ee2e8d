package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "users"
	roomsCollection = "rooms"

	connectTimeout = 10 * time.Second
)

type MongoWhiteboardRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoWhiteboardRepository(uri, dbName string) (*MongoWhiteboardRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	repo := &MongoWhiteboardRepository{
		client: client,
		db:     client.Database(dbName),
	}

	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// ensureIndexes creates the unique indexes the application relies on for
// email and roomId uniqueness. Mongo treats existing identical indexes as
// a no-op, so this is safe to run on every startup.
func (r *MongoWhiteboardRepository) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := r.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = r.db.Collection(roomsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roomId", Value: 1}},
		Options: unique,
	})
	return err
}

func (r *MongoWhiteboardRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *MongoWhiteboardRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoWhiteboardRepository) users() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *MongoWhiteboardRepository) rooms() *mongo.Collection {
	return r.db.Collection(roomsCollection)
}
