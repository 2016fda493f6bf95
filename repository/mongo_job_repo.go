package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jobify-dev/jobs-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *jobDocument) toModel() models.Job {
	return models.Job{
		ID:        d.ID.Hex(),
		Company:   d.Company,
		Position:  d.Position,
		Status:    models.JobStatus(d.Status),
		JobType:   models.JobType(d.JobType),
		CreatedBy: d.CreatedBy.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ownedJobFilter matches a single job by id and owner. Unparseable ids match nothing.
func ownedJobFilter(ownerID, id string) (bson.D, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return bson.D{{Key: "_id", Value: oid}, {Key: "createdBy", Value: owner}}, nil
}

// mongoJobFilter renders the filter of q. The owner clause is always first.
func mongoJobFilter(q JobQuery) (bson.D, error) {
	owner, err := primitive.ObjectIDFromHex(q.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", q.OwnerID(), err)
	}
	filter := bson.D{{Key: "createdBy", Value: owner}}

	if q.Search() != "" {
		filter = append(filter, bson.E{Key: "position", Value: primitive.Regex{Pattern: regexp.QuoteMeta(q.Search()), Options: "i"}})
	}
	if q.Status() != "" {
		filter = append(filter, bson.E{Key: "status", Value: string(q.Status())})
	}
	if q.JobType() != "" {
		filter = append(filter, bson.E{Key: "jobType", Value: string(q.JobType())})
	}
	return filter, nil
}

// mongoJobSort returns the sort document for sort, or nil for natural order.
func mongoJobSort(sort JobSort) bson.D {
	switch sort {
	case SortLatest, SortOldest:
		return bson.D{{Key: "createdAt", Value: -1}}
	case SortAZ:
		return bson.D{{Key: "position", Value: 1}}
	case SortZA:
		return bson.D{{Key: "position", Value: -1}}
	default:
		return nil
	}
}

// CreateJob inserts job, assigning its id. A zero CreatedAt means now.
func (s *MongoStore) CreateJob(ctx context.Context, job *models.Job) error {
	owner, err := primitive.ObjectIDFromHex(job.CreatedBy)
	if err != nil {
		return fmt.Errorf("invalid owner id %q: %w", job.CreatedBy, err)
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	job.UpdatedAt = job.CreatedAt

	doc := jobDocument{
		ID:        primitive.NewObjectID(),
		Company:   job.Company,
		Position:  job.Position,
		Status:    string(job.Status),
		JobType:   string(job.JobType),
		CreatedBy: owner,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
	if _, err := s.jobs.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error inserting job: %w", err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

// GetJob retrieves a job by id, scoped to its owner.
func (s *MongoStore) GetJob(ctx context.Context, ownerID, id string) (*models.Job, error) {
	filter, err := ownedJobFilter(ownerID, id)
	if err != nil {
		return nil, err
	}
	var doc jobDocument
	if err := s.jobs.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting job by id: %w", err)
	}
	job := doc.toModel()
	return &job, nil
}

// ListJobs retrieves one page of jobs matching q, plus the total matching count.
func (s *MongoStore) ListJobs(ctx context.Context, q JobQuery) ([]models.Job, int, error) {
	filter, err := mongoJobFilter(q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(int64(q.Skip())).SetLimit(int64(q.Limit()))
	if sort := mongoJobSort(q.Sort()); sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := s.jobs.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying jobs page: %w", err)
	}
	var docs []jobDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("error decoding jobs page: %w", err)
	}

	total, err := s.jobs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying total job count: %w", err)
	}

	jobs := make([]models.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, docs[i].toModel())
	}
	return jobs, int(total), nil
}

// UpdateJob applies upd atomically to the job matching id and owner.
func (s *MongoStore) UpdateJob(ctx context.Context, ownerID, id string, upd models.JobUpdate) (*models.Job, error) {
	filter, err := ownedJobFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if upd.Company != nil {
		set = append(set, bson.E{Key: "company", Value: *upd.Company})
	}
	if upd.Position != nil {
		set = append(set, bson.E{Key: "position", Value: *upd.Position})
	}
	if upd.Status != nil {
		set = append(set, bson.E{Key: "status", Value: string(*upd.Status)})
	}
	if upd.JobType != nil {
		set = append(set, bson.E{Key: "jobType", Value: string(*upd.JobType)})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc jobDocument
	if err := s.jobs.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating job: %w", err)
	}
	job := doc.toModel()
	return &job, nil
}

// DeleteJob removes the job matching id and owner atomically.
func (s *MongoStore) DeleteJob(ctx context.Context, ownerID, id string) error {
	filter, err := ownedJobFilter(ownerID, id)
	if err != nil {
		return err
	}
	if err := s.jobs.FindOneAndDelete(ctx, filter).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}

// statusCountPipeline groups the owner's jobs by status.
func statusCountPipeline(owner primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "createdBy", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// monthlyCountPipeline groups the owner's jobs by creation year and month, newest first.
func monthlyCountPipeline(owner primitive.ObjectID, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "createdBy", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$createdAt"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$createdAt"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: -1}, {Key: "_id.month", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// CountJobsByStatus groups the owner's jobs by status.
func (s *MongoStore) CountJobsByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", ownerID, err)
	}
	cursor, err := s.jobs.Aggregate(ctx, statusCountPipeline(owner))
	if err != nil {
		return nil, fmt.Errorf("error counting jobs by status: %w", err)
	}
	var rows []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding status counts: %w", err)
	}

	counts := make(map[models.JobStatus]int, len(rows))
	for _, r := range rows {
		counts[models.JobStatus(r.Status)] = r.Count
	}
	return counts, nil
}

// CountJobsByMonth groups the owner's jobs by creation month, newest first.
func (s *MongoStore) CountJobsByMonth(ctx context.Context, ownerID string, limit int) ([]models.MonthlyCount, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", ownerID, err)
	}
	cursor, err := s.jobs.Aggregate(ctx, monthlyCountPipeline(owner, limit))
	if err != nil {
		return nil, fmt.Errorf("error counting jobs by month: %w", err)
	}
	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding monthly counts: %w", err)
	}

	buckets := make([]models.MonthlyCount, 0, len(rows))
	for _, r := range rows {
		buckets = append(buckets, models.MonthlyCount{Year: r.ID.Year, Month: r.ID.Month, Count: r.Count})
	}
	return buckets, nil
}
