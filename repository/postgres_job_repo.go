package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobify-dev/jobs-api/models"
)

const jobColumns = `id, company, position, status, job_type, created_by, created_at, updated_at`

func scanJob(row interface{ Scan(...interface{}) error }, j *models.Job) error {
	return row.Scan(&j.ID, &j.Company, &j.Position, &j.Status, &j.JobType, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildJobWhere renders the filter of q as a WHERE clause with positional args.
// The owner clause is always first.
func buildJobWhere(q JobQuery) (string, []interface{}) {
	conditions := []string{"created_by = $1"}
	args := []interface{}{q.OwnerID()}

	if q.Search() != "" {
		args = append(args, "%"+escapeLike(q.Search())+"%")
		conditions = append(conditions, fmt.Sprintf("position ILIKE $%d", len(args)))
	}
	if q.Status() != "" {
		args = append(args, string(q.Status()))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.JobType() != "" {
		args = append(args, string(q.JobType()))
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// jobOrderBy renders the ORDER BY clause for sort. Natural order has none.
// Positions compare bytewise, matching the other stores.
func jobOrderBy(sort JobSort) string {
	switch sort {
	case SortLatest, SortOldest:
		return " ORDER BY created_at DESC, id"
	case SortAZ:
		return ` ORDER BY position COLLATE "C" ASC, id`
	case SortZA:
		return ` ORDER BY position COLLATE "C" DESC, id`
	default:
		return ""
	}
}

// CreateJob inserts job, assigning its id. A zero CreatedAt means now.
func (s *PostgresStore) CreateJob(ctx context.Context, job *models.Job) error {
	job.ID = uuid.NewString()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	job.UpdatedAt = job.CreatedAt

	query := `INSERT INTO jobs (` + jobColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, query, job.ID, job.Company, job.Position, string(job.Status), string(job.JobType), job.CreatedBy, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by id, scoped to its owner.
func (s *PostgresStore) GetJob(ctx context.Context, ownerID, id string) (*models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var j models.Job
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND created_by = $2`
	if err := scanJob(s.db.QueryRowContext(ctx, query, id, ownerID), &j); err != nil {
		return nil, wrapNoRows(err, "error getting job by id")
	}
	return &j, nil
}

// ListJobs retrieves one page of jobs matching q, plus the total matching count.
func (s *PostgresStore) ListJobs(ctx context.Context, q JobQuery) ([]models.Job, int, error) {
	where, args := buildJobWhere(q)

	query := fmt.Sprintf(`SELECT %s FROM jobs %s%s LIMIT $%d OFFSET $%d`,
		jobColumns, where, jobOrderBy(q.Sort()), len(args)+1, len(args)+2)
	finalArgs := append(append([]interface{}{}, args...), q.Limit(), q.Skip())
	rows, err := s.db.QueryContext(ctx, query, finalArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying jobs page: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, 0, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error after iterating through job rows: %w", err)
	}

	// Count with the same filter, ignoring pagination
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error querying total job count: %w", err)
	}

	return jobs, total, nil
}

// UpdateJob applies upd in a single statement scoped to id and owner.
func (s *PostgresStore) UpdateJob(ctx context.Context, ownerID, id string, upd models.JobUpdate) (*models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	query := `UPDATE jobs SET
			company = COALESCE($3, company),
			position = COALESCE($4, position),
			status = COALESCE($5, status),
			job_type = COALESCE($6, job_type),
			updated_at = NOW()
		WHERE id = $1 AND created_by = $2
		RETURNING ` + jobColumns
	var j models.Job
	row := s.db.QueryRowContext(ctx, query, id, ownerID, upd.Company, upd.Position, nullableString(upd.Status), nullableString(upd.JobType))
	if err := scanJob(row, &j); err != nil {
		return nil, wrapNoRows(err, "error updating job")
	}
	return &j, nil
}

// DeleteJob removes a job in a single statement scoped to id and owner.
func (s *PostgresStore) DeleteJob(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	var deleted string
	err := s.db.QueryRowContext(ctx, `DELETE FROM jobs WHERE id = $1 AND created_by = $2 RETURNING id`, id, ownerID).Scan(&deleted)
	if err != nil {
		return wrapNoRows(err, "error deleting job")
	}
	return nil
}

// CountJobsByStatus groups the owner's jobs by status.
func (s *PostgresStore) CountJobsByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM jobs WHERE created_by = $1 GROUP BY status`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error counting jobs by status: %w", err)
	}
	defer rows.Close()

	counts := map[models.JobStatus]int{}
	for rows.Next() {
		var (
			status models.JobStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating through status counts: %w", err)
	}
	return counts, nil
}

// CountJobsByMonth groups the owner's jobs by UTC creation month, newest first.
func (s *PostgresStore) CountJobsByMonth(ctx context.Context, ownerID string, limit int) ([]models.MonthlyCount, error) {
	query := `SELECT
			EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month,
			COUNT(*)
		FROM jobs WHERE created_by = $1
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT $2`
	rows, err := s.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error counting jobs by month: %w", err)
	}
	defer rows.Close()

	buckets := []models.MonthlyCount{}
	for rows.Next() {
		var b models.MonthlyCount
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			return nil, fmt.Errorf("error scanning monthly count: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating through monthly counts: %w", err)
	}
	return buckets, nil
}

// nullableString converts an optional enum pointer into a driver value.
func nullableString[T ~string](v *T) interface{} {
	if v == nil {
		return nil
	}
	return string(*v)
}
