package dtos

type JobInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Enabled     bool   `json:"enabled"`
	LastRun     string `json:"last_run,omitempty"`
	LastDeleted *int64 `json:"last_deleted,omitempty"`
	LastError   string `json:"last_error,omitempty"`
	NextRun     string `json:"next_run,omitempty"`
}

type JobStatusData struct {
	Jobs []JobInfo `json:"jobs"`
}
