package models

import (
	"errors"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	gorm.Model
	UserID        uint              `gorm:"column:user_id;not null" json:"user_id"`
	User          User              `gorm:"foreignKey:UserID" json:"-"`
	FlightID      uint              `gorm:"column:flight_id;not null" json:"-"`
	Flight        Flight            `gorm:"foreignKey:FlightID" json:"flight"`
	FirstName     string            `gorm:"column:first_name;not null" json:"first_name"`
	MiddleName    string            `gorm:"column:middle_name" json:"middle_name"`
	LastName      string            `gorm:"column:last_name;not null" json:"last_name"`
	Email         string            `gorm:"column:email;not null" json:"email"`
	ContactNumber string            `gorm:"column:contact_number;not null" json:"contact_number"`
	SeatType      SeatType          `gorm:"column:seat_type;not null" json:"seat_type"`
	Status        ReservationStatus `gorm:"column:status;not null;default:pending" json:"status"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first_name and last_name are required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.ContactNumber == "" {
		return errors.New("contact_number is required")
	}
	if r.SeatType != SeatTypeEconomy && r.SeatType != SeatTypeBusiness {
		return errors.New("seat_type must be economy or business")
	}
	if !ValidReservationStatus(r.Status) {
		return errors.New("status must be pending, confirmed or cancelled")
	}
	return nil
}

func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a reservation may move between two statuses.
// cancelled is terminal and a confirmed reservation cannot go back to pending.
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case ReservationStatusPending:
		return to == ReservationStatusConfirmed || to == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return to == ReservationStatusCancelled
	}
	return false
}

// SeatEffect returns the change to Flight.AvailableSeats caused by a status
// transition: -1 when a seat is taken, +1 when one is released, 0 otherwise.
// A seat is consumed exactly once, on pending -> confirmed.
func SeatEffect(from, to ReservationStatus) int {
	if from == to {
		return 0
	}
	if from == ReservationStatusPending && to == ReservationStatusConfirmed {
		return -1
	}
	if from == ReservationStatusConfirmed && to == ReservationStatusCancelled {
		return 1
	}
	return 0
}
