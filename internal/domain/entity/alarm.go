package entity

import "time"

// Alarm represents a user's named reminder with a trigger time.
type Alarm struct {
	ID        int64
	UserID    int64
	AlarmName string
	Time      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
