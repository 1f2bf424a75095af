package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserName     string    `gorm:"column:user_name;type:varchar(255);not null" json:"user_name"`
	Mail         string    `gorm:"column:mail;type:varchar(255);uniqueIndex;not null" json:"mail"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
