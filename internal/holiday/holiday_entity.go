package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Date is kept as the submitted YYYY-MM-DD string; holidays are display
// memos and never join against leave date ranges.
type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
