package models

import "time"

// StatsMonths is how many of the most recent months are reported.
const StatsMonths = 6

// MonthlyCount is one (year, month) bucket of job applications.
type MonthlyCount struct {
	Year  int
	Month int
	Count int
}

// DefaultStats counts jobs per known status.
type DefaultStats struct {
	Pending   int `json:"pending"`
	Interview int `json:"interview"`
	Declined  int `json:"declined"`
}

// MonthlyApplication is a labelled month bucket, e.g. {"Aug 2023", 4}.
type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsResponse is the dashboard statistics payload.
type StatsResponse struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}

// NewDefaultStats shapes raw status counts, defaulting missing statuses to zero.
// Statuses outside the known set are dropped.
func NewDefaultStats(counts map[JobStatus]int) DefaultStats {
	return DefaultStats{
		Pending:   counts[StatusPending],
		Interview: counts[StatusInterview],
		Declined:  counts[StatusDeclined],
	}
}

// NewMonthlyApplications turns newest-first buckets into chronological labelled entries.
func NewMonthlyApplications(buckets []MonthlyCount) []MonthlyApplication {
	out := make([]MonthlyApplication, len(buckets))
	for i, b := range buckets {
		label := time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out[len(buckets)-1-i] = MonthlyApplication{Date: label, Count: b.Count}
	}
	return out
}
