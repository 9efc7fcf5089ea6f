package dtos

// LookupRequest carries a member number or a QR-scanned uuid.
type LookupRequest struct {
	Query string `json:"query"`
}

// MemberSummary is what the contractor pages need after a lookup.
type MemberSummary struct {
	FullName     string `json:"full_name"`
	UUID         string `json:"uuid"`
	MemberNumber string `json:"member_number"`
}
