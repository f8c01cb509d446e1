package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/mactanair/airline-backend/internal/models"
)

// FlightInput is the write shape for flights: origin and destination are raw
// city ids, unlike the read shape which nests full City objects.
type FlightInput struct {
	FlightNumber       string            `json:"flight_number" binding:"required"`
	Origin             uint              `json:"origin" binding:"required"`
	Destination        uint              `json:"destination" binding:"required"`
	DepartureTime      time.Time         `json:"departure_time" binding:"required"`
	ArrivalTime        time.Time         `json:"arrival_time" binding:"required"`
	ReturnTime         time.Time         `json:"return_time"`
	Capacity           int               `json:"capacity"`
	AvailableSeats     int               `json:"available_seats"`
	TripChoice         models.TripChoice `json:"trip_choice" binding:"required,oneof=one-way round-trip"`
	SeatType           models.SeatType   `json:"seat_type" binding:"required,oneof=economy business"`
	EconomyClassPrice  int               `json:"economy_class_price"`
	BusinessClassPrice int               `json:"business_class_price"`
}

// SearchFilter narrows the flight list; every supplied field is ANDed in.
type SearchFilter struct {
	TripChoice    string `json:"trip_choice"`
	OriginID      uint   `json:"origin_id"`
	DestinationID uint   `json:"destination_id"`
	DepartureTime string `json:"departure_time"`
	SeatType      string `json:"seat_type"`
}

type FlightService interface {
	Create(in FlightInput) (*models.Flight, error)
	Get(id uint) (*models.Flight, error)
	List() ([]models.Flight, error)
	Search(filter SearchFilter) ([]models.Flight, error)
	Update(id uint, in FlightInput) (*models.Flight, error)
	Delete(id uint) error
}

type flightService struct {
	db *gorm.DB
}

func NewFlightService(db *gorm.DB) FlightService {
	return &flightService{db: db}
}

var _ FlightService = (*flightService)(nil)

func (s *flightService) Create(in FlightInput) (*models.Flight, error) {
	flight := models.Flight{
		FlightNumber:       in.FlightNumber,
		OriginID:           in.Origin,
		DestinationID:      in.Destination,
		DepartureTime:      in.DepartureTime,
		ArrivalTime:        in.ArrivalTime,
		ReturnTime:         in.ReturnTime,
		Capacity:           in.Capacity,
		AvailableSeats:     in.AvailableSeats,
		TripChoice:         in.TripChoice,
		SeatType:           in.SeatType,
		EconomyClassPrice:  in.EconomyClassPrice,
		BusinessClassPrice: in.BusinessClassPrice,
	}
	if err := flight.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	origin, destination, err := s.resolveCities(flight.OriginID, flight.DestinationID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(&flight).Error; err != nil {
		return nil, err
	}
	flight.Origin, flight.Destination = origin, destination
	return &flight, nil
}

func (s *flightService) resolveCities(originID, destinationID uint) (models.City, models.City, error) {
	var origin, destination models.City
	if err := s.db.First(&origin, originID).Error; err != nil {
		return origin, destination, invalid("origin city not found")
	}
	if err := s.db.First(&destination, destinationID).Error; err != nil {
		return origin, destination, invalid("destination city not found")
	}
	return origin, destination, nil
}

func (s *flightService) Get(id uint) (*models.Flight, error) {
	var flight models.Flight
	if err := s.db.Preload("Origin").Preload("Destination").
		First(&flight, id).Error; err != nil {
		return nil, translate(err)
	}
	return &flight, nil
}

func (s *flightService) List() ([]models.Flight, error) {
	var flights []models.Flight
	if err := s.db.Preload("Origin").Preload("Destination").
		Order("id").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// Search applies every supplied filter with AND semantics. The departure
// filter matches flights leaving at or after the given time.
func (s *flightService) Search(filter SearchFilter) ([]models.Flight, error) {
	query := s.db.Preload("Origin").Preload("Destination").Order("id")

	if filter.TripChoice != "" {
		query = query.Where("trip_choice = ?", filter.TripChoice)
	}
	if filter.OriginID != 0 {
		query = query.Where("origin_id = ?", filter.OriginID)
	}
	if filter.DestinationID != 0 {
		query = query.Where("destination_id = ?", filter.DestinationID)
	}
	if filter.SeatType != "" {
		query = query.Where("seat_type = ?", filter.SeatType)
	}
	if filter.DepartureTime != "" {
		departure, err := ParseSearchTime(filter.DepartureTime)
		if err != nil {
			return nil, invalid("departure_time: %v", err)
		}
		query = query.Where("departure_time >= ?", departure)
	}

	var flights []models.Flight
	if err := query.Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

var searchTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseSearchTime accepts the handful of timestamp shapes clients send.
func ParseSearchTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range searchTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Update applies full replacement semantics, same as city edits.
func (s *flightService) Update(id uint, in FlightInput) (*models.Flight, error) {
	var flight models.Flight
	if err := s.db.First(&flight, id).Error; err != nil {
		return nil, translate(err)
	}

	flight.FlightNumber = in.FlightNumber
	flight.OriginID = in.Origin
	flight.DestinationID = in.Destination
	flight.DepartureTime = in.DepartureTime
	flight.ArrivalTime = in.ArrivalTime
	flight.ReturnTime = in.ReturnTime
	flight.Capacity = in.Capacity
	flight.AvailableSeats = in.AvailableSeats
	flight.TripChoice = in.TripChoice
	flight.SeatType = in.SeatType
	flight.EconomyClassPrice = in.EconomyClassPrice
	flight.BusinessClassPrice = in.BusinessClassPrice

	if err := flight.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	origin, destination, err := s.resolveCities(flight.OriginID, flight.DestinationID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Save(&flight).Error; err != nil {
		return nil, err
	}
	flight.Origin, flight.Destination = origin, destination
	return &flight, nil
}

func (s *flightService) Delete(id uint) error {
	var flight models.Flight
	if err := s.db.First(&flight, id).Error; err != nil {
		return translate(err)
	}
	return s.db.Delete(&flight).Error
}
