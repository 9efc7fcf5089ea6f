package gorm

import "time"

// WorkContract is a contractor's stated availability for one day.
// Status is "OK", "NG" or NULL.
type WorkContract struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UUID      string    `gorm:"column:uuid;type:varchar(36);not null;uniqueIndex:uq_work_contract_uuid_date,priority:1"`
	WorkDate  time.Time `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_work_contract_uuid_date,priority:2;index"`
	Status    *string   `gorm:"column:status;type:varchar(4)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (WorkContract) TableName() string {
	return "work_contract"
}
