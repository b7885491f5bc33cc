package model

import (
	"tavola/shared/model"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Reservation is one party's claim on a service slot. Every status except
// cancelled counts toward the slot's booked covers.
type Reservation struct {
	ID          string `db:"id" validate:"required"`
	GuestName   string `db:"guest_name" validate:"required"`
	GuestPhone  string `db:"guest_phone" validate:"required"`
	GuestEmail  string `db:"guest_email"`
	BookingDate string `db:"booking_date" validate:"required"`
	BookingTime string `db:"booking_time" validate:"required"`
	SlotID      string `db:"slot_id" validate:"required"`
	PartySize   int    `db:"party_size" validate:"required"`
	Status      string `db:"status" validate:"required"`
	Notes       string `db:"notes"`
	model.Metadata
}

// Active reports whether the reservation still occupies capacity.
func (r *Reservation) Active() bool {
	return r.Status != StatusCancelled
}

const (
	EntityName = "reservation"
	TableName  = "reservations"
)

const (
	FieldID          = "id"
	FieldGuestName   = "guest_name"
	FieldGuestPhone  = "guest_phone"
	FieldGuestEmail  = "guest_email"
	FieldBookingDate = "booking_date"
	FieldBookingTime = "booking_time"
	FieldSlotID      = "slot_id"
	FieldPartySize   = "party_size"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)
