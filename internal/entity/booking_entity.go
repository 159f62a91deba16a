package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ClassItem is a bookable class type (e.g. "Yoga", "Spin").
type ClassItem struct {
	Id          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClassSession is a scheduled occurrence of a class item.
type ClassSession struct {
	Id          uuid.UUID
	ClassItemId uuid.UUID
	TeacherId   *uuid.UUID
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Booking reserves a class session slot under a membership. Creating and
// cancelling a booking adjusts the membership's quota usage in the same
// database transaction.
type Booking struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	MembershipId   uuid.UUID
	ClassSessionId uuid.UUID
	Status         BookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
