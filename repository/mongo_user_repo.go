package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jobify-dev/jobs-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		LastName:     d.LastName,
		Location:     d.Location,
		PasswordHash: d.Password,
		TestUser:     d.TestUser,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.D) (*models.User, error) {
	var doc userDocument
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return doc.toModel(), nil
}

// CreateUser hashes the password and inserts the user document.
func (s *MongoStore) CreateUser(ctx context.Context, u *models.User, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	u.Email = strings.ToLower(u.Email)
	u.PasswordHash = hashed
	u.ApplyDefaults()
	now := time.Now().UTC()

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Email:     u.Email,
		Name:      u.Name,
		LastName:  u.LastName,
		Location:  u.Location,
		Password:  u.PasswordHash,
		TestUser:  u.TestUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error inserting user: %w", err)
	}

	u.ID = doc.ID.Hex()
	u.CreatedAt, u.UpdatedAt = now, now
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.D{{Key: "email", Value: strings.ToLower(email)}})
}

// GetUserByID retrieves a user by id.
func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.findUser(ctx, bson.D{{Key: "_id", Value: oid}})
}

// UpdateUser overwrites email, name, last name and location.
func (s *MongoStore) UpdateUser(ctx context.Context, u *models.User) error {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return ErrNotFound
	}

	u.Email = strings.ToLower(u.Email)
	u.UpdatedAt = time.Now().UTC()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "email", Value: u.Email},
		{Key: "name", Value: u.Name},
		{Key: "lastName", Value: u.LastName},
		{Key: "location", Value: u.Location},
		{Key: "updatedAt", Value: u.UpdatedAt},
	}}}

	res, err := s.users.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
