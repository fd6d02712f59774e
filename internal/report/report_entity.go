package report

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// Report snapshots the filing user the same way leave requests do; File
// holds an already-uploaded attachment URL, storage itself is external.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName    string    `gorm:"type:varchar(255);not null" json:"user_name"`
	UserEmail   string    `gorm:"type:varchar(255);not null" json:"user_email"`
	UserImage   string    `gorm:"type:text" json:"user_image"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        string    `gorm:"type:varchar(100);not null" json:"type"`
	File        string    `gorm:"type:text" json:"file"`
	Status      string    `gorm:"type:varchar(20);not null;default:'unread'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
