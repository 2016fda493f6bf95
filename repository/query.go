package repository

import (
	"math"
	"strings"

	"github.com/jobify-dev/jobs-api/models"
)

// JobSort selects the ordering of a job listing.
type JobSort string

const (
	SortNatural JobSort = ""
	SortLatest  JobSort = "latest"
	// SortOldest orders newest first, same as SortLatest. Existing clients
	// depend on that ordering.
	SortOldest JobSort = "oldest"
	SortAZ     JobSort = "a-z"
	SortZA     JobSort = "z-a"
)

// ParseJobSort maps a query value to a JobSort; unknown values fall back to natural order.
func ParseJobSort(raw string) JobSort {
	switch s := JobSort(raw); s {
	case SortLatest, SortOldest, SortAZ, SortZA:
		return s
	default:
		return SortNatural
	}
}

// JobQuery describes a filtered, sorted, paginated listing of one owner's jobs.
// The owner can only be set through NewJobQuery, so every query is owner-scoped.
type JobQuery struct {
	ownerID string
	search  string
	status  models.JobStatus
	jobType models.JobType
	sort    JobSort
	page    int
	limit   int
}

// NewJobQuery starts a query over the jobs created by ownerID.
func NewJobQuery(ownerID string) JobQuery {
	return JobQuery{ownerID: ownerID, page: models.DefaultPage, limit: models.DefaultLimit}
}

// WithSearch adds a case-insensitive substring match on position.
func (q JobQuery) WithSearch(search string) JobQuery {
	q.search = search
	return q
}

// WithStatus adds an exact status match; the zero value removes the filter.
func (q JobQuery) WithStatus(status models.JobStatus) JobQuery {
	q.status = status
	return q
}

// WithJobType adds an exact job type match; the zero value removes the filter.
func (q JobQuery) WithJobType(jobType models.JobType) JobQuery {
	q.jobType = jobType
	return q
}

func (q JobQuery) SortBy(sort JobSort) JobQuery {
	q.sort = sort
	return q
}

// Paginate sets the 1-based page and page size. Values below one are replaced by defaults.
func (q JobQuery) Paginate(page, limit int) JobQuery {
	if page < 1 {
		page = models.DefaultPage
	}
	if limit < 1 {
		limit = models.DefaultLimit
	}
	q.page, q.limit = page, limit
	return q
}

func (q JobQuery) OwnerID() string { return q.ownerID }
func (q JobQuery) Search() string { return q.search }
func (q JobQuery) Status() models.JobStatus { return q.status }
func (q JobQuery) JobType() models.JobType { return q.jobType }
func (q JobQuery) Sort() JobSort { return q.sort }
func (q JobQuery) Page() int { return q.page }
func (q JobQuery) Limit() int { return q.limit }

// Skip is the number of matching jobs before the page. It saturates at
// math.MaxInt instead of overflowing for very large pages.
func (q JobQuery) Skip() int {
	if q.page-1 > math.MaxInt/q.limit {
		return math.MaxInt
	}
	return (q.page - 1) * q.limit
}

// Matches reports whether job satisfies every predicate of the query.
func (q JobQuery) Matches(job models.Job) bool {
	if job.CreatedBy != q.ownerID {
		return false
	}
	if q.search != "" && !strings.Contains(strings.ToLower(job.Position), strings.ToLower(q.search)) {
		return false
	}
	if q.status != "" && job.Status != q.status {
		return false
	}
	if q.jobType != "" && job.JobType != q.jobType {
		return false
	}
	return true
}
