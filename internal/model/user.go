package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the operator's role within the hotel account.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// User is the session principal operating the dashboard.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Avatar    *string   `json:"avatar,omitempty" gorm:"type:varchar(2048)"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);default:'owner'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch carries an account-settings profile edit. Password changes go
// through the dedicated credentials path, not this patch.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Apply merges the non-nil fields of the patch into the user.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = p.Avatar
	}
}
