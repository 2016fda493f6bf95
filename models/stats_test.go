package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultStats(t *testing.T) {
	stats := NewDefaultStats(map[JobStatus]int{
		StatusPending:   2,
		StatusInterview: 1,
		"archived":      7,
	})

	assert.Equal(t, DefaultStats{Pending: 2, Interview: 1, Declined: 0}, stats)
	assert.Equal(t, DefaultStats{}, NewDefaultStats(nil))
}

func TestNewMonthlyApplications(t *testing.T) {
	buckets := []MonthlyCount{
		{Year: 2024, Month: 2, Count: 3},
		{Year: 2024, Month: 1, Count: 1},
		{Year: 2023, Month: 12, Count: 5},
	}

	got := NewMonthlyApplications(buckets)

	assert.Equal(t, []MonthlyApplication{
		{Date: "Dec 2023", Count: 5},
		{Date: "Jan 2024", Count: 1},
		{Date: "Feb 2024", Count: 3},
	}, got)
	assert.Empty(t, NewMonthlyApplications(nil))
	assert.NotNil(t, NewMonthlyApplications(nil))
}
