package gorm

import "time"

// Member is a registered school/club member. Rows are maintained by the membership
// forms; this service only reads them.
type Member struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	UUID         string     `gorm:"column:uuid;type:varchar(36);uniqueIndex"`
	MemberType   string     `gorm:"column:member_type;type:varchar(20)"`
	MemberNumber string     `gorm:"column:member_number;type:varchar(10);not null;uniqueIndex"`
	FullName     string     `gorm:"column:full_name;type:varchar(100);not null"`
	Furigana     string     `gorm:"column:furigana;type:varchar(100)"`
	MobilePhone  string     `gorm:"column:mobile_phone;type:varchar(20)"`
	Email        string     `gorm:"column:email;type:varchar(255)"`
	CourseType   string     `gorm:"column:course_type;type:varchar(20)"`
	CourseName   string     `gorm:"column:course_name;type:varchar(20)"`
	GliderName   string     `gorm:"column:glider_name;type:varchar(50)"`
	GliderColor  string     `gorm:"column:glider_color;type:varchar(50)"`
	RegNo        string     `gorm:"column:reg_no;type:varchar(20)"`
	ReglimitDate *time.Time `gorm:"column:reglimit_date;type:date"`
	License      string     `gorm:"column:license;type:varchar(20)"`
	RepackDate   *time.Time `gorm:"column:repack_date;type:date"`
	Contract     bool       `gorm:"column:contract;not null"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}
