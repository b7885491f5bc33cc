package model

import (
	"tavola/shared/model"
)

const (
	AssignmentTypeSingle = "single"
	AssignmentTypeJoined = "joined"
)

// TableAssignment pins a confirmed booking to one physical table for one
// service slot. A joined plan produces one row per member table, all
// sharing the same group id. The unique index on
// (table_id, slot_date, slot_time, slot_id) is what makes double seating
// impossible under concurrent commits.
type TableAssignment struct {
	ID               string  `db:"id" validate:"required"`
	BookingID        string  `db:"booking_id" validate:"required"`
	TableID          string  `db:"table_id" validate:"required"`
	GroupID          *string `db:"group_id"`
	AssignmentType   string  `db:"assignment_type" validate:"required"`
	AssignedCapacity int     `db:"assigned_capacity" validate:"required"`
	SlotDate         string  `db:"slot_date" validate:"required"`
	SlotTime         string  `db:"slot_time" validate:"required"`
	SlotID           string  `db:"slot_id" validate:"required"`
	model.Metadata
}

const (
	EntityName = "table_assignment"
	TableName  = "table_assignments"
)

const (
	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldTableID          = "table_id"
	FieldGroupID          = "group_id"
	FieldAssignmentType   = "assignment_type"
	FieldAssignedCapacity = "assigned_capacity"
	FieldSlotDate         = "slot_date"
	FieldSlotTime         = "slot_time"
	FieldSlotID           = "slot_id"
)
