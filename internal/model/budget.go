package model

import "time"

// Budget is a planned amount for a (user, category) pair over an inclusive
// date window. Budgets for the same category may overlap; there is no
// update operation, replacement is delete plus create.
type Budget struct {
	StartDate  time.Time
	EndDate    time.Time
	Amount     Money
	ID         int64
	UserID     int64
	CategoryID int64
}
