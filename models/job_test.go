package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobStatus(t *testing.T) {
	for _, s := range []string{"pending", "interview", "declined"} {
		got, err := ParseJobStatus(s)
		require.NoError(t, err)
		assert.Equal(t, JobStatus(s), got)
	}

	_, err := ParseJobStatus("hired")
	assert.Error(t, err)
	_, err = ParseJobStatus("")
	assert.Error(t, err)
}

func TestParseJobType(t *testing.T) {
	got, err := ParseJobType("part-time")
	require.NoError(t, err)
	assert.Equal(t, JobTypePartTime, got)

	_, err = ParseJobType("Full-Time")
	assert.Error(t, err)
}

func TestJobInputNewJobDefaults(t *testing.T) {
	job := JobInput{Company: "Acme", Position: "Engineer"}.NewJob("owner-1")

	assert.Equal(t, "owner-1", job.CreatedBy)
	assert.Equal(t, StatusPending, job.Status)
	assert.Equal(t, JobTypeFullTime, job.JobType)

	job = JobInput{Company: "Acme", Position: "Engineer", Status: StatusDeclined, JobType: JobTypeRemote}.NewJob("owner-1")
	assert.Equal(t, StatusDeclined, job.Status)
	assert.Equal(t, JobTypeRemote, job.JobType)
}

func TestJobUpdate(t *testing.T) {
	empty := ""
	assert.True(t, JobUpdate{Company: &empty}.HasEmptyRequired())
	assert.True(t, JobUpdate{Position: &empty}.HasEmptyRequired())
	assert.False(t, JobUpdate{}.HasEmptyRequired())

	company := "Globex"
	status := StatusInterview
	job := &Job{Company: "Acme", Position: "Engineer", Status: StatusPending, JobType: JobTypeFullTime}
	JobUpdate{Company: &company, Status: &status}.Apply(job)

	assert.Equal(t, "Globex", job.Company)
	assert.Equal(t, "Engineer", job.Position)
	assert.Equal(t, StatusInterview, job.Status)
	assert.Equal(t, JobTypeFullTime, job.JobType)
}
