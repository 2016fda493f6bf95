package repository

import (
	"math"
	"testing"

	"github.com/jobify-dev/jobs-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ownerHex = "64b7f0c2a1b2c3d4e5f60718"

func TestParseJobSort(t *testing.T) {
	assert.Equal(t, SortLatest, ParseJobSort("latest"))
	assert.Equal(t, SortOldest, ParseJobSort("oldest"))
	assert.Equal(t, SortAZ, ParseJobSort("a-z"))
	assert.Equal(t, SortZA, ParseJobSort("z-a"))
	assert.Equal(t, SortNatural, ParseJobSort(""))
	assert.Equal(t, SortNatural, ParseJobSort("random"))
}

func TestJobQueryPagination(t *testing.T) {
	q := NewJobQuery("owner")
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 30, q.Limit())
	assert.Equal(t, 0, q.Skip())

	q = q.Paginate(3, 10)
	assert.Equal(t, 20, q.Skip())
	assert.Equal(t, 10, q.Limit())

	q = q.Paginate(0, -5)
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 30, q.Limit())
}

func TestJobQuerySkipSaturates(t *testing.T) {
	q := NewJobQuery("owner").Paginate(2, math.MaxInt)
	assert.Equal(t, math.MaxInt, q.Skip())

	q = q.Paginate(math.MaxInt/2+2, 2)
	assert.Equal(t, math.MaxInt, q.Skip())

	q = q.Paginate(math.MaxInt/2, 2)
	assert.Equal(t, math.MaxInt-3, q.Skip())
}

func TestJobQueryMatches(t *testing.T) {
	job := models.Job{CreatedBy: "a", Position: "Senior Go Developer", Status: models.StatusInterview, JobType: models.JobTypeRemote}

	assert.True(t, NewJobQuery("a").Matches(job))
	assert.False(t, NewJobQuery("b").Matches(job))
	assert.True(t, NewJobQuery("a").WithSearch("go dev").Matches(job))
	assert.False(t, NewJobQuery("a").WithSearch("rust").Matches(job))
	assert.True(t, NewJobQuery("a").WithStatus(models.StatusInterview).Matches(job))
	assert.False(t, NewJobQuery("a").WithStatus(models.StatusPending).Matches(job))
	assert.False(t, NewJobQuery("a").WithJobType(models.JobTypeFullTime).Matches(job))
	assert.False(t, NewJobQuery("b").WithSearch("go").WithStatus(models.StatusInterview).Matches(job))
}

func TestBuildJobWhere(t *testing.T) {
	where, args := buildJobWhere(NewJobQuery("owner-1"))
	assert.Equal(t, "WHERE created_by = $1", where)
	assert.Equal(t, []interface{}{"owner-1"}, args)

	q := NewJobQuery("owner-1").
		WithSearch("50%_dev").
		WithStatus(models.StatusPending).
		WithJobType(models.JobTypeInternship)
	where, args = buildJobWhere(q)
	assert.Equal(t, "WHERE created_by = $1 AND position ILIKE $2 AND status = $3 AND job_type = $4", where)
	assert.Equal(t, []interface{}{"owner-1", `%50\%\_dev%`, "pending", "internship"}, args)

	where, args = buildJobWhere(NewJobQuery("owner-1").WithJobType(models.JobTypeRemote))
	assert.Equal(t, "WHERE created_by = $1 AND job_type = $2", where)
	assert.Equal(t, []interface{}{"owner-1", "remote"}, args)
}

func TestJobOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY created_at DESC, id", jobOrderBy(SortLatest))
	assert.Equal(t, jobOrderBy(SortLatest), jobOrderBy(SortOldest))
	assert.Equal(t, ` ORDER BY position COLLATE "C" ASC, id`, jobOrderBy(SortAZ))
	assert.Equal(t, ` ORDER BY position COLLATE "C" DESC, id`, jobOrderBy(SortZA))
	assert.Equal(t, "", jobOrderBy(SortNatural))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestMongoJobFilter(t *testing.T) {
	owner, err := primitive.ObjectIDFromHex(ownerHex)
	require.NoError(t, err)

	filter, err := mongoJobFilter(NewJobQuery(ownerHex))
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "createdBy", Value: owner}}, filter)

	q := NewJobQuery(ownerHex).WithSearch("c++").WithStatus(models.StatusDeclined).WithJobType(models.JobTypePartTime)
	filter, err = mongoJobFilter(q)
	require.NoError(t, err)
	assert.Equal(t, bson.D{
		{Key: "createdBy", Value: owner},
		{Key: "position", Value: primitive.Regex{Pattern: `c\+\+`, Options: "i"}},
		{Key: "status", Value: "declined"},
		{Key: "jobType", Value: "part-time"},
	}, filter)

	_, err = mongoJobFilter(NewJobQuery("not-an-object-id"))
	assert.Error(t, err)
}

func TestMongoJobSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, mongoJobSort(SortLatest))
	assert.Equal(t, mongoJobSort(SortLatest), mongoJobSort(SortOldest))
	assert.Equal(t, bson.D{{Key: "position", Value: 1}}, mongoJobSort(SortAZ))
	assert.Equal(t, bson.D{{Key: "position", Value: -1}}, mongoJobSort(SortZA))
	assert.Nil(t, mongoJobSort(SortNatural))
}

func TestOwnedJobFilter(t *testing.T) {
	_, err := ownedJobFilter(ownerHex, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)

	filter, err := ownedJobFilter(ownerHex, ownerHex)
	require.NoError(t, err)
	require.Len(t, filter, 2)
	assert.Equal(t, "_id", filter[0].Key)
	assert.Equal(t, "createdBy", filter[1].Key)
}

func TestMonthlyCountPipeline(t *testing.T) {
	owner, err := primitive.ObjectIDFromHex(ownerHex)
	require.NoError(t, err)

	pipeline := monthlyCountPipeline(owner, models.StatsMonths)
	require.Len(t, pipeline, 4)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$group", pipeline[1][0].Key)
	assert.Equal(t, bson.D{{Key: "_id.year", Value: -1}, {Key: "_id.month", Value: -1}}, pipeline[2][0].Value)
	assert.Equal(t, bson.E{Key: "$limit", Value: 6}, pipeline[3][0])

	assert.Len(t, statusCountPipeline(owner), 2)
}
