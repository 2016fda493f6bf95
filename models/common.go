package models

// Pagination defaults for job listings.
const (
	DefaultPage  = 1
	DefaultLimit = 30
)

// JobsResponse is the paginated job listing returned to the client.
type JobsResponse struct {
	Jobs       []Job `json:"jobs"`
	TotalJobs  int   `json:"totalJobs"`
	NumOfPages int   `json:"numOfPages"`
}

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Msg string `json:"msg"`
}
