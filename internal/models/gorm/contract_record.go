package gorm

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractRecord is one contractor's daily flight report (請負日報).
// TotalAmount and MiniGuarantee are derived from DailyFlight and never set on their own.
type ContractRecord struct {
	ID               uint            `gorm:"column:id;primaryKey"`
	FlightDate       time.Time       `gorm:"column:flight_date;type:date;not null;uniqueIndex:uq_rep_contract_uuid_date,priority:2"`
	UUID             string          `gorm:"column:uuid;type:varchar(50);not null;uniqueIndex:uq_rep_contract_uuid_date,priority:1"`
	Name             string          `gorm:"column:name;type:varchar(100)"`
	DailyFlight      int             `gorm:"column:daily_flight"`
	TakeoffLocation  string          `gorm:"column:takeoff_location;type:varchar(100)"`
	UsedGlider       string          `gorm:"column:used_glider;type:varchar(100)"`
	Size             string          `gorm:"column:size;type:varchar(20)"`
	PilotHarness     string          `gorm:"column:pilot_harness;type:varchar(100)"`
	RepackDate       *time.Time      `gorm:"column:repack_date;type:date"`
	PassengerHarness string          `gorm:"column:passenger_harness;type:varchar(100)"`
	NearMiss         string          `gorm:"column:near_miss;type:text"`
	Improvement      string          `gorm:"column:improvement;type:text"`
	DamagedSection   string          `gorm:"column:damaged_section;type:text"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	MiniGuarantee    bool            `gorm:"column:mini_guarantee;not null"`
}

// TableName specifies the table name for GORM
func (ContractRecord) TableName() string {
	return "rep_contract"
}
