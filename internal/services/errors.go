package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a fetch, update or delete names a
	// nonexistent id. Handlers translate it to a 404 with an
	// entity-specific message.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed, missing or out-of-enum fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for any failed login, including a
	// non-staff account on the admin path, so the response never hints at
	// which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registration reuses a username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrCityInUse rejects deleting a city that still has flights.
	ErrCityInUse = errors.New("city has scheduled flights")

	// ErrNoSeatsAvailable rejects confirming a reservation on a full flight.
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrInvalidTransition rejects a disallowed reservation status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSeatLocked reports per-flight lock contention on seat updates.
	ErrSeatLocked = errors.New("flight inventory is busy, try again")
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
