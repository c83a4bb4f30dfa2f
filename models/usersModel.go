package models

import (
	"time"
)

// User is an account able to log in to the API.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id"`
	FullName     string    `gorm:"size:150;column:full_name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:idx_users_email;column:email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash"`
	Role         string    `gorm:"size:20;not null;check:chk_users_role,role IN ('Admin', 'Doctor', 'Patient');column:role"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (User) TableName() string {
	return "users"
}
