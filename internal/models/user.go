package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatar is the sentinel value for accounts without an uploaded avatar.
const DefaultAvatar = "default-avatar.png"

type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Firstname           string     `json:"firstname" gorm:"not null"`
	Lastname            string     `json:"lastname" gorm:"not null"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"not null"`
	Avatar              string     `json:"avatar" gorm:"not null;default:default-avatar.png"`
	Role                string     `json:"role" gorm:"not null;default:user"`
	CreatedIssues       []Issue    `json:"created_issues,omitempty" gorm:"foreignKey:CreatorID"`
	ResetPasswordToken  string     `json:"-" gorm:"not null;default:''"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt           time.Time  `json:"updated_at" gorm:"not null"`
}

// TotalCreatedIssues is derived from the loaded issue list, never stored.
func (user *User) TotalCreatedIssues() int {
	return len(user.CreatedIssues)
}

func (user *User) HasCustomAvatar() bool {
	return user.Avatar != "" && user.Avatar != DefaultAvatar
}
