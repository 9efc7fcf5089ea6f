package dtos

type WorkSchedulesRequest struct {
	UUID string `json:"uuid"`
}

// WorkSaveRequest maps YYYY-MM-DD to "OK", "NG" or null. Other values clear the day.
type WorkSaveRequest struct {
	UUID      string         `json:"uuid"`
	Schedules map[string]any `json:"schedules"`
}

// WorkEntryResult reports what happened to one submitted date.
type WorkEntryResult struct {
	Date    string  `json:"date"`
	Status  *string `json:"status"`
	Outcome string  `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

type WorkSaveResponse struct {
	Saved   int               `json:"saved"`
	Skipped int               `json:"skipped"`
	Entries []WorkEntryResult `json:"entries"`
}

type WorkMember struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type WorkMemberStatus struct {
	UUID   string  `json:"uuid"`
	Name   string  `json:"name"`
	Status *string `json:"status"`
}

type WorkDay struct {
	Date    string             `json:"date"`
	OKCount int                `json:"ok_count"`
	Members []WorkMemberStatus `json:"members"`
}

type WorkMonthlyResponse struct {
	Year    int          `json:"year"`
	Month   int          `json:"month"`
	Members []WorkMember `json:"members"`
	Days    []WorkDay    `json:"days"`
}

type CleanupResponse struct {
	Deleted int64  `json:"deleted"`
	Cutoff  string `json:"cutoff"`
}

// WorkSchedulesResponse is the member's calendar for the editable window.
type WorkSchedulesResponse struct {
	UUID        string             `json:"uuid"`
	WindowStart string             `json:"window_start"`
	WindowEnd   string             `json:"window_end"`
	Schedules   map[string]*string `json:"schedules"`
}
