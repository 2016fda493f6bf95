package repository

import (
	"context"
	"errors"

	"github.com/jobify-dev/jobs-api/models"
)

var (
	// ErrNotFound is returned when no job matches both the id and the owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser hashes password and inserts u, filling its id and timestamps.
	CreateUser(ctx context.Context, u *models.User, password string) error
	// GetUserByEmail returns (nil, nil) when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// UpdateUser overwrites the profile fields of u.
	UpdateUser(ctx context.Context, u *models.User) error
}

// JobRepository persists job applications. Every call is scoped to an owner.
type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, ownerID, id string) (*models.Job, error)
	// ListJobs returns one page of jobs and the total matching the filter.
	ListJobs(ctx context.Context, q JobQuery) ([]models.Job, int, error)
	UpdateJob(ctx context.Context, ownerID, id string, upd models.JobUpdate) (*models.Job, error)
	DeleteJob(ctx context.Context, ownerID, id string) error
	CountJobsByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error)
	// CountJobsByMonth returns at most limit buckets, newest first.
	CountJobsByMonth(ctx context.Context, ownerID string, limit int) ([]models.MonthlyCount, error)
}

// Store is a complete storage backend with an explicit lifecycle.
type Store interface {
	UserRepository
	JobRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
