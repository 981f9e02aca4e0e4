package models

import "time"

// BookingState is the current step of one booking workflow instance.
type BookingState string

const (
	BookingDetails    BookingState = "details"
	BookingConfirming BookingState = "confirming"
	BookingSuccess    BookingState = "success"
)

// BookingRequest holds the details collected in the first workflow step.
// It is transient: created fresh on every open, discarded on close, never
// persisted across workflow restarts.
type BookingRequest struct {
	Name       string    `json:"name" validate:"required"`
	Phone      string    `json:"phone" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	ServiceRef string    `json:"service_ref" validate:"required"`
}
