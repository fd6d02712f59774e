package meeting

import (
	"time"

	"github.com/google/uuid"
)

// Department is either a department name or "all" for a company-wide
// meeting.
type Meeting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Department  string    `gorm:"type:varchar(100);not null" json:"department"`
	Date        string    `gorm:"type:varchar(10);not null" json:"date"`
	Time        string    `gorm:"type:varchar(20);not null" json:"time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}

const DepartmentAll = "all"
