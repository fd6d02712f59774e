package leavetype

import (
	"time"

	"github.com/google/uuid"
)

// LeaveType is an admin-managed label. Names are stored lower-cased so
// lookups stay case-insensitive; duplicates are intentionally allowed and
// deleting a type never touches requests that already reference its name.
type LeaveType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
