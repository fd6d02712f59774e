package user

import (
	"time"

	"github.com/google/uuid"
)

// Role and status values as the presentation layer knows them. Accounts
// start as unprivileged "User" and are promoted to "Employee" by an admin.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
	RoleUser     = "User"

	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:text;not null;uniqueIndex:uq_users_email"`
	Image string    `gorm:"type:text"`

	Department  string `gorm:"type:varchar(255)"`
	Designation string `gorm:"type:varchar(255)"`
	Gender      string `gorm:"type:varchar(20)"`
	Contact     string `gorm:"type:varchar(50)"`
	Address     string `gorm:"type:text"`

	// Calendar fields arrive from date inputs as YYYY-MM-DD and are stored
	// verbatim; nothing computes on them.
	DateOfBirth     string `gorm:"type:varchar(10)"`
	HiredDate       string `gorm:"type:varchar(10)"`
	ContractEndDate string `gorm:"type:varchar(10)"`

	Role              string `gorm:"type:varchar(50);not null;default:'User'"`
	Status            string `gorm:"type:varchar(50);not null;default:'active'"`
	SuspendedDuration string `gorm:"type:varchar(50)"`
	Archive           bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
