package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleBreeder Role = "breeder"
	RoleFighter Role = "fighter"
	RoleSeller  Role = "seller"
	RoleShipper Role = "shipper"
	RoleBuyer   Role = "buyer"
	RoleGaffer  Role = "gaffer"
)

// Roles lists every role a user may sign up with.
var Roles = []Role{RoleBreeder, RoleFighter, RoleSeller, RoleShipper, RoleBuyer, RoleGaffer}

// SellerRoles are the roles that can list chickens and show up as sellers in search.
var SellerRoles = []Role{RoleBreeder, RoleFighter, RoleSeller}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID                       uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt                time.Time      `json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt                time.Time      `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name                     string         `gorm:"not null" json:"name" example:"Juan Dela Cruz"`
	Email                    string         `gorm:"uniqueIndex;not null" json:"email" example:"juan@example.com"`
	PasswordHash             string         `gorm:"not null" json:"-"`
	Role                     Role           `gorm:"type:varchar(20);not null;index" json:"role" example:"breeder"`
	IsEmailVerified          bool           `gorm:"default:false" json:"isEmailVerified"`
	EmailVerificationToken   *string        `gorm:"index" json:"-"`
	EmailVerificationExpires *time.Time     `json:"-"`
	Farm                     *Farm          `gorm:"foreignKey:UserID" json:"farm,omitempty"`
	Stable                   *Stable        `gorm:"foreignKey:UserID" json:"stable,omitempty"`
}

// UserSummary is the public projection of a user returned next to farms and sessions.
type UserSummary struct {
	ID    uint   `json:"userId" example:"1"`
	Name  string `json:"name" example:"Juan Dela Cruz"`
	Email string `json:"email" example:"juan@example.com"`
	Role  Role   `json:"role" example:"breeder"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
