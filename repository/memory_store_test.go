package repository

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJobs(t *testing.T, s *MemoryStore, owner string, jobs ...models.Job) []models.Job {
	t.Helper()
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		j.CreatedBy = owner
		require.NoError(t, s.CreateJob(context.Background(), &j))
		out = append(out, j)
	}
	return out
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := &models.User{Email: "Jane@Example.com", Name: "Jane"}
	require.NoError(t, s.CreateUser(ctx, u, "secret123"))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, models.DefaultLastName, u.LastName)
	assert.Equal(t, models.DefaultLocation, u.Location)
	assert.True(t, CheckPasswordHash("secret123", u.PasswordHash))

	err := s.CreateUser(ctx, &models.User{Email: "JANE@example.com", Name: "Other"}, "secret123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	found, err := s.GetUserByEmail(ctx, "JANE@EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	missing, err := s.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	found.Location = "Berlin"
	require.NoError(t, s.UpdateUser(ctx, found))
	reloaded, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", reloaded.Location)
}

func TestMemoryStoreListJobs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedJobs(t, s, "a",
		models.Job{Position: "Backend Engineer", Status: models.StatusPending, JobType: models.JobTypeFullTime, CreatedAt: base},
		models.Job{Position: "frontend engineer", Status: models.StatusInterview, JobType: models.JobTypeRemote, CreatedAt: base.Add(time.Hour)},
		models.Job{Position: "Accountant", Status: models.StatusPending, JobType: models.JobTypeFullTime, CreatedAt: base.Add(2 * time.Hour)},
	)
	seedJobs(t, s, "b", models.Job{Position: "Backend Engineer", Status: models.StatusPending, JobType: models.JobTypeFullTime})

	jobs, total, err := s.ListJobs(ctx, NewJobQuery("a").WithSearch("ENGINEER"))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, jobs, 2)

	jobs, total, err = s.ListJobs(ctx, NewJobQuery("a").WithStatus(models.StatusPending).SortBy(SortAZ))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Accountant", jobs[0].Position)

	jobs, _, err = s.ListJobs(ctx, NewJobQuery("a").SortBy(SortOldest))
	require.NoError(t, err)
	assert.Equal(t, "Accountant", jobs[0].Position, "oldest shares the newest-first ordering")

	jobs, total, err = s.ListJobs(ctx, NewJobQuery("a").Paginate(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Accountant", jobs[0].Position)

	jobs, total, err = s.ListJobs(ctx, NewJobQuery("a").Paginate(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestMemoryStoreListJobsHugePage(t *testing.T) {
	s := NewMemoryStore()
	seedJobs(t, s, "a", models.Job{Position: "One"}, models.Job{Position: "Two"})

	for _, q := range []JobQuery{
		NewJobQuery("a").Paginate(2, math.MaxInt),
		NewJobQuery("a").Paginate(math.MaxInt/2+2, 2),
		NewJobQuery("a").Paginate(1, math.MaxInt),
	} {
		jobs, total, err := s.ListJobs(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		if q.Page() == 1 {
			assert.Len(t, jobs, 2)
		} else {
			assert.Empty(t, jobs)
		}
	}
}

func TestMemoryStoreOwnerScopedMutations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	jobs := seedJobs(t, s, "a", models.Job{Company: "Acme", Position: "Dev", Status: models.StatusPending, JobType: models.JobTypeFullTime})
	id := jobs[0].ID

	_, err := s.GetJob(ctx, "b", id)
	assert.ErrorIs(t, err, ErrNotFound)

	company := "Globex"
	_, err = s.UpdateJob(ctx, "b", id, models.JobUpdate{Company: &company})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteJob(ctx, "b", id), ErrNotFound)

	updated, err := s.UpdateJob(ctx, "a", id, models.JobUpdate{Company: &company})
	require.NoError(t, err)
	assert.Equal(t, "Globex", updated.Company)
	assert.Equal(t, "Dev", updated.Position)

	require.NoError(t, s.DeleteJob(ctx, "a", id))
	_, err = s.GetJob(ctx, "a", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreStats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var jobs []models.Job
	for m := 1; m <= 8; m++ {
		jobs = append(jobs, models.Job{
			Position:  fmt.Sprintf("Job %d", m),
			Status:    models.StatusPending,
			CreatedAt: time.Date(2023, time.Month(m), 10, 0, 0, 0, 0, time.UTC),
		})
	}
	jobs[0].Status = models.StatusInterview
	seedJobs(t, s, "a", jobs...)
	seedJobs(t, s, "b", models.Job{Status: models.StatusDeclined})

	counts, err := s.CountJobsByStatus(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, map[models.JobStatus]int{models.StatusPending: 7, models.StatusInterview: 1}, counts)

	buckets, err := s.CountJobsByMonth(ctx, "a", models.StatsMonths)
	require.NoError(t, err)
	require.Len(t, buckets, 6)
	assert.Equal(t, models.MonthlyCount{Year: 2023, Month: 8, Count: 1}, buckets[0])
	assert.Equal(t, models.MonthlyCount{Year: 2023, Month: 3, Count: 1}, buckets[5])
}
