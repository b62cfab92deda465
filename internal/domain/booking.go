package domain

import "time"

// Booking reserves a desk for one user on one calendar day. Date carries no
// time-of-day significance.
type Booking struct {
	ID         string    `json:"id"`
	DeskID     string    `json:"desk_id"`
	DeskNumber string    `json:"desk_number"`
	Date       time.Time `json:"date"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
}

// User identifies the person acting on the dashboard.
type User struct {
	ID   string
	Name string
}
