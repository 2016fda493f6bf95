package models

import (
	"fmt"
	"time"
)

// JobStatus is the stage of an application.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusInterview JobStatus = "interview"
	StatusDeclined  JobStatus = "declined"
)

// JobStatuses lists every accepted status in display order.
var JobStatuses = []JobStatus{StatusPending, StatusInterview, StatusDeclined}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	for _, known := range JobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseJobStatus converts raw input into a JobStatus, rejecting unknown values.
func ParseJobStatus(raw string) (JobStatus, error) {
	s := JobStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid job status %q", raw)
	}
	return s, nil
}

// JobType is the kind of position applied for.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// JobTypes lists every accepted job type.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship}

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseJobType converts raw input into a JobType, rejecting unknown values.
func ParseJobType(raw string) (JobType, error) {
	t := JobType(raw)
	if !t.Valid() {
		return "", fmt.Errorf("invalid job type %q", raw)
	}
	return t, nil
}

// Job represents a job application owned by a single user.
// The JSON id key is "_id" for compatibility with the web client.
type Job struct {
	ID        string    `json:"_id" db:"id"`
	Company   string    `json:"company" db:"company"`
	Position  string    `json:"position" db:"position"`
	Status    JobStatus `json:"status" db:"status"`
	JobType   JobType   `json:"jobType" db:"job_type"`
	CreatedBy string    `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// JobInput is the body accepted when creating a job.
// There is no createdBy field; the owner comes from the caller.
type JobInput struct {
	Company  string    `json:"company" validate:"required,max=50"`
	Position string    `json:"position" validate:"required,max=100"`
	Status   JobStatus `json:"status" validate:"omitempty,jobstatus"`
	JobType  JobType   `json:"jobType" validate:"omitempty,jobtype"`
}

// NewJob builds a job owned by ownerID, defaulting status and type.
func (in JobInput) NewJob(ownerID string) *Job {
	job := &Job{
		Company:   in.Company,
		Position:  in.Position,
		Status:    in.Status,
		JobType:   in.JobType,
		CreatedBy: ownerID,
	}
	if job.Status == "" {
		job.Status = StatusPending
	}
	if job.JobType == "" {
		job.JobType = JobTypeFullTime
	}
	return job
}

// JobUpdate is a partial update; nil fields are left untouched.
type JobUpdate struct {
	Company  *string    `json:"company" validate:"omitnil,max=50"`
	Position *string    `json:"position" validate:"omitnil,max=100"`
	Status   *JobStatus `json:"status" validate:"omitnil,jobstatus"`
	JobType  *JobType   `json:"jobType" validate:"omitnil,jobtype"`
}

// HasEmptyRequired reports whether company or position was sent as an empty string.
func (u JobUpdate) HasEmptyRequired() bool {
	return (u.Company != nil && *u.Company == "") || (u.Position != nil && *u.Position == "")
}

// Apply copies the present fields onto job.
func (u JobUpdate) Apply(job *Job) {
	if u.Company != nil {
		job.Company = *u.Company
	}
	if u.Position != nil {
		job.Position = *u.Position
	}
	if u.Status != nil {
		job.Status = *u.Status
	}
	if u.JobType != nil {
		job.JobType = *u.JobType
	}
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job *Job `json:"job"`
}
