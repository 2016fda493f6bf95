package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by MongoStore.
const (
	UsersCollection = "users"
	JobsCollection  = "jobs"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
	jobs   *mongo.Collection
}

// NewMongoStore uses database dbName of an already connected client.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client: client,
		users:  db.Collection(UsersCollection),
		jobs:   db.Collection(JobsCollection),
	}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	LastName  string             `bson:"lastName"`
	Location  string             `bson:"location"`
	Password  string             `bson:"password"`
	TestUser  bool               `bson:"testUser"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type jobDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Company   string             `bson:"company"`
	Position  string             `bson:"position"`
	Status    string             `bson:"status"`
	JobType   string             `bson:"jobType"`
	CreatedBy primitive.ObjectID `bson:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
