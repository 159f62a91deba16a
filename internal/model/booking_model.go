package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ClassItem) TableName() string {
	return "class_items"
}

type ClassSession struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClassItemId uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeacherId   *uuid.UUID `gorm:"type:uuid"`
	StartsAt    time.Time  `gorm:"not null;index"`
	EndsAt      time.Time  `gorm:"not null"`
	Capacity    int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (ClassSession) TableName() string {
	return "class_sessions"
}

type Booking struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	MembershipId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClassSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(50);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
