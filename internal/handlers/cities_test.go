package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mactanair/airline-backend/internal/models"
	"github.com/mactanair/airline-backend/internal/services"
)

func TestGetCity_notFound(t *testing.T) {
	cities := &mockCityService{}
	cities.On("Get", uint(42)).Return(nil, services.ErrNotFound)

	w, c := testContext(t, "GET", "/get_city/42/", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	GetCity(cities)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "City not found", decodeBody(t, w)["error"])
}

func TestAddCity_success(t *testing.T) {
	cities := &mockCityService{}
	city := &models.City{
		Name:        "Davao",
		AirportName: "Francisco Bangoy International Airport",
		AirportCode: "DVO",
		Status:      models.CityStatusActive,
	}
	city.ID = 3
	cities.On("Create", services.CityInput{
		Name:        "Davao",
		AirportName: "Francisco Bangoy International Airport",
		AirportCode: "DVO",
		Status:      models.CityStatusActive,
	}).Return(city, nil)

	w, c := testContext(t, "POST", "/addcity/", gin.H{
		"name":         "Davao",
		"airport_name": "Francisco Bangoy International Airport",
		"airport_code": "DVO",
		"status":       "active",
	})
	AddCity(cities)(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Davao", decodeBody(t, w)["name"])
	cities.AssertExpectations(t)
}

func TestAddCity_badStatus(t *testing.T) {
	cities := &mockCityService{}

	w, c := testContext(t, "POST", "/addcity/", gin.H{
		"name":         "Davao",
		"airport_name": "Francisco Bangoy International Airport",
		"airport_code": "DVO",
		"status":       "retired",
	})
	AddCity(cities)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cities.AssertNotCalled(t, "Create")
}

func TestDeleteCity_inUse(t *testing.T) {
	cities := &mockCityService{}
	cities.On("Delete", uint(1)).Return(services.ErrCityInUse)

	w, c := testContext(t, "DELETE", "/delete_city/1/", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	DeleteCity(cities)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "city has scheduled flights", decodeBody(t, w)["error"])
}

func TestDeleteCity_notFound(t *testing.T) {
	cities := &mockCityService{}
	cities.On("Delete", uint(9)).Return(services.ErrNotFound)

	w, c := testContext(t, "DELETE", "/delete_city/9/", nil)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	DeleteCity(cities)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "City not found", decodeBody(t, w)["error"])
}
