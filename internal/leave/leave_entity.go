package leave

import (
	"time"

	"github.com/google/uuid"
)

// DeciderSnapshot is a point-in-time copy of the admin who decided the
// request. It is never re-synced when the source user record changes.
type DeciderSnapshot struct {
	Name  string `gorm:"type:varchar(255)" json:"name"`
	Email string `gorm:"type:varchar(255)" json:"email"`
	Image string `gorm:"type:text" json:"image"`
}

func (s DeciderSnapshot) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.Image == ""
}

// Leave denormalizes the requesting user onto the row so list screens render
// without joins. From/To are inclusive calendar dates; Days is fixed at
// creation and never recomputed.
type Leave struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName   string          `gorm:"type:varchar(255);not null" json:"user_name"`
	UserEmail  string          `gorm:"type:varchar(255);not null" json:"user_email"`
	UserImage  string          `gorm:"type:text" json:"user_image"`
	Type       string          `gorm:"type:varchar(100);not null" json:"type"`
	From       time.Time       `gorm:"column:from_date;not null" json:"from"`
	To         time.Time       `gorm:"column:to_date;not null" json:"to"`
	Days       int             `gorm:"not null" json:"days"`
	Status     string          `gorm:"type:varchar(20);not null;default:'waiting';index" json:"status"`
	ApprovedBy DeciderSnapshot `gorm:"embedded;embeddedPrefix:approved_by_" json:"approved_by"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	RejectedBy DeciderSnapshot `gorm:"embedded;embeddedPrefix:rejected_by_" json:"rejected_by"`
	RejectedAt *time.Time      `json:"rejected_at,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}
