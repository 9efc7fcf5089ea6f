package dtos

// IoCheckinRequest identifies the member by number or uuid. Blank overrides fall back
// to the member's profile.
type IoCheckinRequest struct {
	MemberNumber  string `json:"member_number"`
	UUID          string `json:"uuid"`
	MemberClass   string `json:"member_class" validate:"max=20"`
	CourseName    string `json:"course_name" validate:"max=50"`
	GliderName    string `json:"glider_name" validate:"max=50"`
	GliderColor   string `json:"glider_color" validate:"max=50"`
	InsuranceType string `json:"insurance_type" validate:"max=20"`
	RadioType     string `json:"radio_type" validate:"max=50"`
}

type IoLookupResponse struct {
	MemberNumber  string  `json:"member_number"`
	UUID          string  `json:"uuid"`
	FullName      string  `json:"full_name"`
	MemberType    string  `json:"member_type"`
	CourseName    string  `json:"course_name"`
	RegNo         string  `json:"reg_no"`
	ReglimitDate  *string `json:"reglimit_date"`
	License       string  `json:"license"`
	GliderName    string  `json:"glider_name"`
	GliderColor   string  `json:"glider_color"`
	RepackDate    *string `json:"repack_date"`
	RepackLimit   *string `json:"repack_limit"`
	LicenseStatus string  `json:"license_status"`
	RepackStatus  string  `json:"repack_status"`
	AlreadyIn     bool    `json:"already_in"`
	AlreadyOut    bool    `json:"already_out"`
	IoFlightID    *uint   `json:"io_flight_id"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
}

type IoCheckinResponse struct {
	Action     string `json:"action"`
	Time       string `json:"time"`
	FullName   string `json:"full_name"`
	IoFlightID uint   `json:"io_flight_id"`
}

type IoFlightRow struct {
	ID            uint    `json:"id"`
	MemberNumber  string  `json:"member_number"`
	UUID          string  `json:"uuid"`
	MemberClass   string  `json:"member_class"`
	FullName      string  `json:"full_name"`
	CourseName    string  `json:"course_name"`
	GliderName    string  `json:"glider_name"`
	GliderColor   string  `json:"glider_color"`
	InsuranceType string  `json:"insurance_type"`
	RadioType     string  `json:"radio_type"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
}
