package dto

import (
	assignmentModel "tavola/internal/domains/assignment/model"
	"tavola/internal/domains/reservation/model"
	"tavola/shared"
	gDto "tavola/shared/dto"
	gModel "tavola/shared/model"
	"tavola/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestName   string `json:"guest_name"   validate:"required,max=100"`
	GuestPhone  string `json:"guest_phone"  validate:"required,max=32"`
	GuestEmail  string `json:"guest_email"  validate:"omitempty,email"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime string `json:"booking_time" validate:"required,datetime=15:04"`
	SlotID      string `json:"slot_id"      validate:"required,max=32"`
	PartySize   int    `json:"party_size"   validate:"required,min=1"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		GuestName:   c.GuestName,
		GuestPhone:  c.GuestPhone,
		GuestEmail:  c.GuestEmail,
		BookingDate: c.BookingDate,
		BookingTime: c.BookingTime,
		SlotID:      c.SlotID,
		PartySize:   c.PartySize,
		Status:      model.StatusPending,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AssignedTableResponse struct {
	TableID          string  `json:"table_id"`
	GroupID          *string `json:"group_id,omitempty"`
	AssignmentType   string  `json:"assignment_type"`
	AssignedCapacity int     `json:"assigned_capacity"`
}

func (r *AssignedTableResponse) FromModel(mod assignmentModel.TableAssignment) {
	r.TableID = mod.TableID
	r.GroupID = mod.GroupID
	r.AssignmentType = mod.AssignmentType
	r.AssignedCapacity = mod.AssignedCapacity
}

type ReservationResponse struct {
	ID          string                  `json:"id"`
	GuestName   string                  `json:"guest_name"`
	GuestPhone  string                  `json:"guest_phone"`
	GuestEmail  string                  `json:"guest_email,omitempty"`
	BookingDate string                  `json:"booking_date"`
	BookingTime string                  `json:"booking_time"`
	SlotID      string                  `json:"slot_id"`
	PartySize   int                     `json:"party_size"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	Tables      []AssignedTableResponse `json:"tables,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.GuestName = mod.GuestName
	r.GuestPhone = mod.GuestPhone
	r.GuestEmail = mod.GuestEmail
	r.BookingDate = mod.BookingDate
	r.BookingTime = mod.BookingTime
	r.SlotID = mod.SlotID
	r.PartySize = mod.PartySize
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

func (r *ReservationResponse) WithAssignments(rows []assignmentModel.TableAssignment) {
	r.Tables = make([]AssignedTableResponse, len(rows))
	for i, row := range rows {
		r.Tables[i].FromModel(row)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is the Kafka payload for lifecycle topics.
type ReservationEvent struct {
	ReservationID string `json:"reservation_id"`
	GuestName     string `json:"guest_name"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	SlotID        string `json:"slot_id"`
	PartySize     int    `json:"party_size"`
	Status        string `json:"status"`
}

func NewReservationEvent(mod model.Reservation) ReservationEvent {
	return ReservationEvent{
		ReservationID: mod.ID,
		GuestName:     mod.GuestName,
		BookingDate:   mod.BookingDate,
		BookingTime:   mod.BookingTime,
		SlotID:        mod.SlotID,
		PartySize:     mod.PartySize,
		Status:        mod.Status,
	}
}
