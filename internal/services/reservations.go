package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/mactanair/airline-backend/internal/models"
)

// CreateReservationInput is the flat write shape used by /createreservation/.
type CreateReservationInput struct {
	FlightID      uint              `json:"flight_id" binding:"required"`
	FirstName     string            `json:"first_name" binding:"required"`
	MiddleName    string            `json:"middle_name"`
	LastName      string            `json:"last_name" binding:"required"`
	Email         string            `json:"email" binding:"required,email"`
	ContactNumber string            `json:"contact_number" binding:"required"`
	SeatType      models.SeatType   `json:"seat_type" binding:"required,oneof=economy business"`
}

// UpdateReservationInput carries a partial edit; nil fields are left alone.
// Reservations are the only entity with merge semantics on update.
type UpdateReservationInput struct {
	FirstName     *string                   `json:"first_name"`
	MiddleName    *string                   `json:"middle_name"`
	LastName      *string                   `json:"last_name"`
	Email         *string                   `json:"email"`
	ContactNumber *string                   `json:"contact_number"`
	SeatType      *models.SeatType          `json:"seat_type"`
	Status        *models.ReservationStatus `json:"status"`
}

type ReservationService interface {
	Create(userID uint, in CreateReservationInput) (*models.Reservation, error)
	Get(id uint) (*models.Reservation, error)
	List() ([]models.Reservation, error)
	ListByUser(userID uint) ([]models.Reservation, error)
	Update(ctx context.Context, id uint, in UpdateReservationInput) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type reservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) ReservationService {
	return &reservationService{db: db}
}

var _ ReservationService = (*reservationService)(nil)

// Create stores a pending reservation. The flight reference must resolve;
// seat inventory is untouched until the reservation is confirmed.
func (s *reservationService) Create(userID uint, in CreateReservationInput) (*models.Reservation, error) {
	var flight models.Flight
	if err := s.db.Preload("Origin").Preload("Destination").
		First(&flight, in.FlightID).Error; err != nil {
		return nil, translate(err)
	}

	reservation := models.Reservation{
		UserID:        userID,
		FlightID:      flight.ID,
		FirstName:     in.FirstName,
		MiddleName:    in.MiddleName,
		LastName:      in.LastName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		SeatType:      in.SeatType,
		Status:        models.ReservationStatusPending,
	}
	if err := reservation.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	if reservation.SeatType != flight.SeatType {
		return nil, invalid("seat_type %s is not offered on flight %s", reservation.SeatType, flight.FlightNumber)
	}

	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	reservation.Flight = flight
	return &reservation, nil
}

func (s *reservationService) Get(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Preload("Flight").
		Preload("Flight.Origin").Preload("Flight.Destination").
		First(&reservation, id).Error; err != nil {
		return nil, translate(err)
	}
	return &reservation, nil
}

func (s *reservationService) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("Flight").
		Preload("Flight.Origin").Preload("Flight.Destination").
		Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *reservationService) ListByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Where("user_id = ?", userID).
		Preload("Flight").
		Preload("Flight.Origin").Preload("Flight.Destination").
		Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Update merges the supplied fields. A status change must follow the
// transition table, and its seat effect is applied to the flight inside the
// same transaction, under the per-flight lock when one is configured.
func (s *reservationService) Update(ctx context.Context, id uint, in UpdateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		return nil, translate(err)
	}

	if in.FirstName != nil {
		reservation.FirstName = *in.FirstName
	}
	if in.MiddleName != nil {
		reservation.MiddleName = *in.MiddleName
	}
	if in.LastName != nil {
		reservation.LastName = *in.LastName
	}
	if in.Email != nil {
		reservation.Email = *in.Email
	}
	if in.ContactNumber != nil {
		reservation.ContactNumber = *in.ContactNumber
	}
	if in.SeatType != nil {
		reservation.SeatType = *in.SeatType
	}

	seatEffect := 0
	if in.Status != nil && *in.Status != reservation.Status {
		if !models.ValidReservationStatus(*in.Status) {
			return nil, invalid("status must be pending, confirmed or cancelled")
		}
		if !models.CanTransition(reservation.Status, *in.Status) {
			return nil, ErrInvalidTransition
		}
		seatEffect = models.SeatEffect(reservation.Status, *in.Status)
		reservation.Status = *in.Status
	}

	if err := reservation.Validate(); err != nil {
		return nil, invalid("%v", err)
	}
	if in.SeatType != nil {
		var flight models.Flight
		if err := s.db.First(&flight, reservation.FlightID).Error; err != nil {
			return nil, translate(err)
		}
		if reservation.SeatType != flight.SeatType {
			return nil, invalid("seat_type %s is not offered on flight %s", reservation.SeatType, flight.FlightNumber)
		}
	}

	if seatEffect != 0 {
		locked, err := AcquireFlightLock(ctx, reservation.FlightID)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrSeatLocked
		}
		defer ReleaseFlightLock(ctx, reservation.FlightID)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		switch seatEffect {
		case -1:
			if err := reserveSeat(tx, reservation.FlightID); err != nil {
				return err
			}
		case 1:
			if err := releaseSeat(tx, reservation.FlightID); err != nil {
				return err
			}
		}
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes the reservation and, when it held a confirmed seat, gives
// that seat back to the flight.
func (s *reservationService) Delete(ctx context.Context, id uint) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		return translate(err)
	}

	if reservation.Status == models.ReservationStatusConfirmed {
		locked, err := AcquireFlightLock(ctx, reservation.FlightID)
		if err != nil {
			return err
		}
		if !locked {
			return ErrSeatLocked
		}
		defer ReleaseFlightLock(ctx, reservation.FlightID)

		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := releaseSeat(tx, reservation.FlightID); err != nil {
				return err
			}
			return tx.Delete(&reservation).Error
		})
	}

	return s.db.Delete(&reservation).Error
}

// reserveSeat decrements available_seats with a guard so the count can never
// go below zero, even under concurrent confirmations.
func reserveSeat(tx *gorm.DB, flightID uint) error {
	result := tx.Model(&models.Flight{}).
		Where("id = ? AND available_seats > 0", flightID).
		UpdateColumn("available_seats", gorm.Expr("available_seats - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoSeatsAvailable
	}
	return nil
}

// releaseSeat increments available_seats, capped at capacity.
func releaseSeat(tx *gorm.DB, flightID uint) error {
	result := tx.Model(&models.Flight{}).
		Where("id = ? AND available_seats < capacity", flightID).
		UpdateColumn("available_seats", gorm.Expr("available_seats + 1"))
	return result.Error
}
