package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mactanair/airline-backend/internal/models"
	"github.com/mactanair/airline-backend/internal/services"
)

func sampleFlight() *models.Flight {
	flight := &models.Flight{
		FlightNumber:   "5J-560",
		OriginID:       1,
		DestinationID:  2,
		Capacity:       100,
		AvailableSeats: 100,
		TripChoice:     models.TripOneWay,
		SeatType:       models.SeatTypeEconomy,
	}
	flight.ID = 10
	flight.Origin = models.City{Name: "Cebu", AirportName: "Mactan-Cebu International Airport", AirportCode: "CEB", Status: models.CityStatusActive}
	flight.Origin.ID = 1
	flight.Destination = models.City{Name: "Manila", AirportName: "Ninoy Aquino International Airport", AirportCode: "MNL", Status: models.CityStatusActive}
	flight.Destination.ID = 2
	return flight
}

func TestListFlights(t *testing.T) {
	flights := &mockFlightService{}
	flights.On("List").Return([]models.Flight{*sampleFlight()}, nil)

	w, c := testContext(t, "GET", "/flights/", nil)
	ListFlights(flights)(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "5J-560", body[0]["flight_number"])

	// reads nest full city objects
	origin := body[0]["origin"].(map[string]interface{})
	assert.Equal(t, "Cebu", origin["name"])
	assert.Equal(t, "CEB", origin["airport_code"])
}

func TestGetFlight_notFound(t *testing.T) {
	flights := &mockFlightService{}
	flights.On("Get", uint(99)).Return(nil, services.ErrNotFound)

	w, c := testContext(t, "GET", "/get_flight/99/", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	GetFlight(flights)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Flight not found", decodeBody(t, w)["error"])
}

func TestGetFlight_badID(t *testing.T) {
	flights := &mockFlightService{}

	w, c := testContext(t, "GET", "/get_flight/abc/", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	GetFlight(flights)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	flights.AssertNotCalled(t, "Get")
}

func TestSearchFlights_passesFilterThrough(t *testing.T) {
	flights := &mockFlightService{}
	expected := services.SearchFilter{
		TripChoice: "one-way",
		OriginID:   1,
		SeatType:   "economy",
	}
	flights.On("Search", expected).Return([]models.Flight{}, nil)

	w, c := testContext(t, "POST", "/search/", gin.H{
		"trip_choice": "one-way",
		"origin_id":   1,
		"seat_type":   "economy",
	})
	SearchFlights(flights)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	flights.AssertExpectations(t)
}

func TestAddFlight_success(t *testing.T) {
	flights := &mockFlightService{}
	flights.On("Create", mock.MatchedBy(func(in services.FlightInput) bool {
		return in.Origin == 1 && in.Destination == 2 && in.FlightNumber == "5J-560"
	})).Return(sampleFlight(), nil)

	w, c := testContext(t, "POST", "/addflight/", gin.H{
		"flight_number":   "5J-560",
		"origin":          1,
		"destination":     2,
		"departure_time":  "2026-09-10T08:00:00Z",
		"arrival_time":    "2026-09-10T09:30:00Z",
		"capacity":        100,
		"available_seats": 100,
		"trip_choice":     "one-way",
		"seat_type":       "economy",
	})
	AddFlight(flights)(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Flight added successfully", decodeBody(t, w)["message"])
	flights.AssertExpectations(t)
}

func TestAddFlight_invalidSeats(t *testing.T) {
	flights := &mockFlightService{}
	flights.On("Create", mock.AnythingOfType("services.FlightInput")).
		Return(nil, services.ErrInvalidInput)

	w, c := testContext(t, "POST", "/addflight/", gin.H{
		"flight_number":   "5J-560",
		"origin":          1,
		"destination":     2,
		"departure_time":  "2026-09-10T08:00:00Z",
		"arrival_time":    "2026-09-10T09:30:00Z",
		"capacity":        100,
		"available_seats": 150,
		"trip_choice":     "one-way",
		"seat_type":       "economy",
	})
	AddFlight(flights)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFlight_notFound(t *testing.T) {
	flights := &mockFlightService{}
	flights.On("Delete", uint(4)).Return(services.ErrNotFound)

	w, c := testContext(t, "DELETE", "/delete_flight/4/", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	DeleteFlight(flights)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Flight not found", decodeBody(t, w)["error"])
}
