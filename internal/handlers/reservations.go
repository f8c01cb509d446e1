package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/models"
	"github.com/mactanair/airline-backend/internal/services"
)

// CreateReservation books a pending reservation from the flat payload shape.
func CreateReservation(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input services.CreateReservationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		reservation, err := reservations.Create(userId, input)
		if err != nil {
			respondError(c, err, "Flight")
			return
		}

		c.JSON(201, gin.H{"reservation_id": reservation.ID})
	}
}

// nestedReservationInput is the nested write shape: the payload embeds a
// flight object, but only its id is consulted.
type nestedReservationInput struct {
	Flight struct {
		ID uint `json:"id" binding:"required"`
	} `json:"flight" binding:"required"`
	FirstName     string          `json:"first_name" binding:"required"`
	MiddleName    string          `json:"middle_name"`
	LastName      string          `json:"last_name" binding:"required"`
	Email         string          `json:"email" binding:"required,email"`
	ContactNumber string          `json:"contact_number" binding:"required"`
	SeatType      models.SeatType `json:"seat_type" binding:"required,oneof=economy business"`
}

func CreateReservationNested(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input nestedReservationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		reservation, err := reservations.Create(userId, services.CreateReservationInput{
			FlightID:      input.Flight.ID,
			FirstName:     input.FirstName,
			MiddleName:    input.MiddleName,
			LastName:      input.LastName,
			Email:         input.Email,
			ContactNumber: input.ContactNumber,
			SeatType:      input.SeatType,
		})
		if err != nil {
			respondError(c, err, "Flight")
			return
		}

		c.JSON(201, reservation)
	}
}

func ListReservations(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reservations.List()
		if err != nil {
			respondError(c, err, "Reservation")
			return
		}
		c.JSON(200, list)
	}
}

// UserReservations lists the authenticated caller's reservations.
func UserReservations(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		list, err := reservations.ListByUser(userId)
		if err != nil {
			respondError(c, err, "Reservation")
			return
		}
		c.JSON(200, list)
	}
}

func GetReservation(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		reservation, err := reservations.Get(id)
		if err != nil {
			respondError(c, err, "Reservation")
			return
		}
		c.JSON(200, reservation)
	}
}

// EditReservation applies a partial edit; reservations are the only entity
// updated by merge rather than full replacement.
func EditReservation(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var input services.UpdateReservationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		reservation, err := reservations.Update(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, err, "Reservation")
			return
		}
		c.JSON(200, reservation)
	}
}

func DeleteReservation(reservations services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := reservations.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Reservation")
			return
		}
		c.JSON(200, gin.H{"message": "Reservation deleted successfully"})
	}
}
