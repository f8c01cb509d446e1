package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/services"
)

func ListFlights(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := flights.List()
		if err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(200, list)
	}
}

func GetFlight(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		flight, err := flights.Get(id)
		if err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(200, flight)
	}
}

// SearchFlights filters the flight list; all supplied criteria are ANDed.
func SearchFlights(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter services.SearchFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		list, err := flights.Search(filter)
		if err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(200, list)
	}
}

// SearchResult echoes the posted search results back to the client.
func SearchResult() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body json.RawMessage
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json", body)
	}
}

func AddFlight(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.FlightInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := flights.Create(input); err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(201, gin.H{"message": "Flight added successfully"})
	}
}

// EditFlight replaces every field from the payload, like city edits.
func EditFlight(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var input services.FlightInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		flight, err := flights.Update(id, input)
		if err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(200, flight)
	}
}

func DeleteFlight(flights services.FlightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := flights.Delete(id); err != nil {
			respondError(c, err, "Flight")
			return
		}
		c.JSON(200, gin.H{"message": "Flight deleted successfully"})
	}
}
