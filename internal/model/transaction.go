package model

import "time"

// Transaction represents a single dated monetary event. It references the
// owning user and one of that user's categories; Amount is the unsigned
// magnitude of the money moved.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      Money
	ID          int64
	UserID      int64
	CategoryID  int64
}
