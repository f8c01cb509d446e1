package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/services"
)

func ListCities(cities services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cities.List()
		if err != nil {
			respondError(c, err, "City")
			return
		}
		c.JSON(200, list)
	}
}

func GetCity(cities services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		city, err := cities.Get(id)
		if err != nil {
			respondError(c, err, "City")
			return
		}
		c.JSON(200, city)
	}
}

func AddCity(cities services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		city, err := cities.Create(input)
		if err != nil {
			respondError(c, err, "City")
			return
		}
		c.JSON(201, city)
	}
}

// EditCity replaces every field from the payload; city edits have no partial
// merge.
func EditCity(cities services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var input services.CityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		city, err := cities.Update(id, input)
		if err != nil {
			respondError(c, err, "City")
			return
		}
		c.JSON(200, city)
	}
}

func DeleteCity(cities services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := cities.Delete(id); err != nil {
			respondError(c, err, "City")
			return
		}
		c.JSON(200, gin.H{"message": "City deleted successfully"})
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
