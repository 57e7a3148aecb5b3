// Package alarm provides use cases for managing user alarms.
// It implements business logic for creating, listing, updating and deleting
// alarms, including validation and interaction with the alarm repository.
package alarm

import "errors"

// Sentinel errors for alarm use case operations.
var (
	// ErrAlarmNotFound indicates that the requested alarm was not found.
	ErrAlarmNotFound = errors.New("alarm not found")
)
