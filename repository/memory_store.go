package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobify-dev/jobs-api/models"
)

// MemoryStore is an in-process Store for local development and tests.
// Jobs keep insertion order, which serves as the natural order.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
	jobs  []models.Job
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: map[string]models.User{},
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }

func (s *MemoryStore) emailTaken(email, exceptID string) bool {
	for id, u := range s.users {
		if u.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	if s.emailTaken(u.Email, "") {
		return ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.PasswordHash = hashed
	u.ApplyDefaults()
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.Email = strings.ToLower(u.Email)
	if s.emailTaken(u.Email, u.ID) {
		return ErrDuplicateEmail
	}
	stored.Email, stored.Name, stored.LastName, stored.Location = u.Email, u.Name, u.LastName, u.Location
	stored.UpdatedAt = s.now()
	s.users[u.ID] = stored
	u.UpdatedAt = stored.UpdatedAt
	return nil
}

// indexOf returns the position of the job matching id and owner, or -1.
func (s *MemoryStore) indexOf(ownerID, id string) int {
	for i, j := range s.jobs {
		if j.ID == id && j.CreatedBy == ownerID {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) CreateJob(_ context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = uuid.NewString()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = s.now()
	}
	job.UpdatedAt = job.CreatedAt
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *MemoryStore) GetJob(_ context.Context, ownerID, id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(ownerID, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	job := s.jobs[i]
	return &job, nil
}

func (s *MemoryStore) ListJobs(_ context.Context, q JobQuery) ([]models.Job, int, error) {
	s.mu.RLock()
	matched := []models.Job{}
	for _, j := range s.jobs {
		if q.Matches(j) {
			matched = append(matched, j)
		}
	}
	s.mu.RUnlock()

	switch q.Sort() {
	case SortLatest, SortOldest:
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].CreatedAt.After(matched[b].CreatedAt) })
	case SortAZ:
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].Position < matched[b].Position })
	case SortZA:
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].Position > matched[b].Position })
	}

	total := len(matched)
	start := q.Skip()
	if start > total {
		start = total
	}
	end := total
	if q.Limit() < total-start {
		end = start + q.Limit()
	}
	return matched[start:end], total, nil
}

func (s *MemoryStore) UpdateJob(_ context.Context, ownerID, id string, upd models.JobUpdate) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(ownerID, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	upd.Apply(&s.jobs[i])
	s.jobs[i].UpdatedAt = s.now()
	job := s.jobs[i]
	return &job, nil
}

func (s *MemoryStore) DeleteJob(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(ownerID, id)
	if i < 0 {
		return ErrNotFound
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	return nil
}

func (s *MemoryStore) CountJobsByStatus(_ context.Context, ownerID string) (map[models.JobStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[models.JobStatus]int{}
	for _, j := range s.jobs {
		if j.CreatedBy == ownerID {
			counts[j.Status]++
		}
	}
	return counts, nil
}

func (s *MemoryStore) CountJobsByMonth(_ context.Context, ownerID string, limit int) ([]models.MonthlyCount, error) {
	s.mu.RLock()
	byMonth := map[[2]int]int{}
	for _, j := range s.jobs {
		if j.CreatedBy == ownerID {
			t := j.CreatedAt.UTC()
			byMonth[[2]int{t.Year(), int(t.Month())}]++
		}
	}
	s.mu.RUnlock()

	buckets := make([]models.MonthlyCount, 0, len(byMonth))
	for k, count := range byMonth {
		buckets = append(buckets, models.MonthlyCount{Year: k[0], Month: k[1], Count: count})
	}
	sort.Slice(buckets, func(a, b int) bool {
		if buckets[a].Year != buckets[b].Year {
			return buckets[a].Year > buckets[b].Year
		}
		return buckets[a].Month > buckets[b].Month
	})
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets, nil
}
