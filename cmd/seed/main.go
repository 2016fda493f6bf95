// Command seed creates the read-only demo account and a spread of sample
// applications so the dashboard has data to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jobify-dev/jobs-api/config"
	"github.com/jobify-dev/jobs-api/database"
	"github.com/jobify-dev/jobs-api/logger"
	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/rs/zerolog/log"
)

var (
	companies = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries", "Wayne Enterprises"}
	positions = []string{"Backend Engineer", "Frontend Developer", "Data Analyst", "DevOps Engineer", "Product Designer", "QA Engineer"}
)

func main() {
	email := flag.String("email", "test@test.com", "Email of the demo user")
	password := flag.String("password", "secret", "Password of the demo user")
	count := flag.Int("jobs", 60, "Number of sample jobs to create")
	months := flag.Int("months", 12, "Spread sample jobs over this many past months")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	if cfg.StoreDriver == config.DriverMemory {
		log.Fatal().Msg("seeding the in-memory store has no effect, set STORE_DRIVER")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer store.Close(ctx)

	created, err := seedDemo(ctx, store, *email, *password, *count, *months, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Str("email", *email).Int("jobs", created).Msg("seed complete")
}

// seedDemo creates the demo user with count jobs spread over the given number
// of months before now. It is a no-op when the user already exists.
func seedDemo(ctx context.Context, store repository.Store, email, password string, count, months int, now time.Time) (int, error) {
	existing, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("demo user already exists, skipping")
		return 0, nil
	}

	user := &models.User{
		Email:    email,
		Name:     "Demo",
		LastName: "User",
		Location: "Remote",
		TestUser: true,
	}
	if err := store.CreateUser(ctx, user, password); err != nil {
		return 0, fmt.Errorf("error creating demo user: %w", err)
	}

	if months < 1 {
		months = 1
	}
	for i := 0; i < count; i++ {
		job := &models.Job{
			Company:   companies[i%len(companies)],
			Position:  positions[i%len(positions)],
			Status:    models.JobStatuses[i%len(models.JobStatuses)],
			JobType:   models.JobTypes[i%len(models.JobTypes)],
			CreatedBy: user.ID,
			CreatedAt: now.AddDate(0, -(i % months), -(i % 28)),
		}
		if err := store.CreateJob(ctx, job); err != nil {
			return i, fmt.Errorf("error creating sample job: %w", err)
		}
	}
	return count, nil
}
