package gorm

import "time"

// IoFlight is a member's mountain entry (入山) and exit (下山) for one day.
// Member details are copied at check-in so the log survives later profile edits.
type IoFlight struct {
	ID            uint       `gorm:"column:id;primaryKey"`
	MemberNumber  string     `gorm:"column:member_number;type:varchar(20)"`
	UUID          string     `gorm:"column:uuid;type:varchar(36);index:idx_io_flight_uuid_date,priority:1"`
	MemberClass   string     `gorm:"column:member_class;type:varchar(20)"`
	FullName      string     `gorm:"column:full_name;type:varchar(100)"`
	CourseName    string     `gorm:"column:course_name;type:varchar(50)"`
	RegNo         string     `gorm:"column:reg_no;type:varchar(20)"`
	ReglimitDate  *time.Time `gorm:"column:reglimit_date;type:date"`
	License       string     `gorm:"column:license;type:varchar(20)"`
	GliderName    string     `gorm:"column:glider_name;type:varchar(50)"`
	GliderColor   string     `gorm:"column:glider_color;type:varchar(50)"`
	RepackDate    *time.Time `gorm:"column:repack_date;type:date"`
	InsuranceType string     `gorm:"column:insurance_type;type:varchar(20)"`
	RadioType     string     `gorm:"column:radio_type;type:varchar(50)"`
	EntryDate     time.Time  `gorm:"column:entry_date;type:date;not null;index:idx_io_flight_uuid_date,priority:2"`
	InTime        *time.Time `gorm:"column:in_time"`
	OutTime       *time.Time `gorm:"column:out_time"`
}

// TableName specifies the table name for GORM
func (IoFlight) TableName() string {
	return "io_flight"
}
