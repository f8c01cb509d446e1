package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type TripChoice string

const (
	TripOneWay    TripChoice = "one-way"
	TripRoundTrip TripChoice = "round-trip"
)

type SeatType string

const (
	SeatTypeEconomy  SeatType = "economy"
	SeatTypeBusiness SeatType = "business"
)

// Flight serializes with full City objects for origin and destination.
// Writes take raw city ids instead; see services.FlightInput.
type Flight struct {
	gorm.Model
	FlightNumber       string     `gorm:"column:flight_number;not null" json:"flight_number"`
	OriginID           uint       `gorm:"column:origin_id;not null" json:"-"`
	Origin             City       `gorm:"foreignKey:OriginID" json:"origin"`
	DestinationID      uint       `gorm:"column:destination_id;not null" json:"-"`
	Destination        City       `gorm:"foreignKey:DestinationID" json:"destination"`
	DepartureTime      time.Time  `gorm:"column:departure_time" json:"departure_time"`
	ArrivalTime        time.Time  `gorm:"column:arrival_time" json:"arrival_time"`
	ReturnTime         time.Time  `gorm:"column:return_time" json:"return_time"`
	Capacity           int        `gorm:"column:capacity;not null" json:"capacity"`
	AvailableSeats     int        `gorm:"column:available_seats;not null" json:"available_seats"`
	TripChoice         TripChoice `gorm:"column:trip_choice;not null;default:one-way" json:"trip_choice"`
	SeatType           SeatType   `gorm:"column:seat_type;not null;default:economy" json:"seat_type"`
	EconomyClassPrice  int        `gorm:"column:economy_class_price;not null;default:0" json:"economy_class_price"`
	BusinessClassPrice int        `gorm:"column:business_class_price;not null;default:0" json:"business_class_price"`
}

func (Flight) TableName() string {
	return "flights"
}

// Validate enforces the at-rest invariants: 0 <= available_seats <= capacity,
// distinct origin/destination, and the enum fields.
func (f *Flight) Validate() error {
	if f.FlightNumber == "" {
		return errors.New("flight_number is required")
	}
	if f.OriginID == 0 || f.DestinationID == 0 {
		return errors.New("origin and destination are required")
	}
	if f.OriginID == f.DestinationID {
		return errors.New("origin and destination must be different cities")
	}
	if f.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	if f.AvailableSeats < 0 || f.AvailableSeats > f.Capacity {
		return errors.New("available_seats must be between 0 and capacity")
	}
	if f.TripChoice != TripOneWay && f.TripChoice != TripRoundTrip {
		return errors.New("trip_choice must be one-way or round-trip")
	}
	if f.SeatType != SeatTypeEconomy && f.SeatType != SeatTypeBusiness {
		return errors.New("seat_type must be economy or business")
	}
	if f.EconomyClassPrice < 0 || f.BusinessClassPrice < 0 {
		return errors.New("prices must not be negative")
	}
	return nil
}
