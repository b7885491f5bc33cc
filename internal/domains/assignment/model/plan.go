package model

import (
	catalog "tavola/internal/domains/catalog/model"
)

// Plan is a proposed seating for one party in one slot: either a single
// table or an ordered set of joined tables bound to a table group. A plan
// is a proposal only; nothing is reserved until it is committed.
type Plan struct {
	Type     string
	GroupID  *string
	Tables   []catalog.Table
	SlotDate string
	SlotTime string
	SlotID   string
}

// TotalCapacity is the summed seat count of the plan's tables.
func (p *Plan) TotalCapacity() int {
	total := 0
	for _, t := range p.Tables {
		total += t.Capacity
	}

	return total
}

// Rows expands the plan into one assignment row per physical table.
func (p *Plan) Rows(bookingID string, newID func() string) []TableAssignment {
	rows := make([]TableAssignment, len(p.Tables))
	for i, t := range p.Tables {
		rows[i] = TableAssignment{
			ID:               newID(),
			BookingID:        bookingID,
			TableID:          t.ID,
			GroupID:          p.GroupID,
			AssignmentType:   p.Type,
			AssignedCapacity: t.Capacity,
			SlotDate:         p.SlotDate,
			SlotTime:         p.SlotTime,
			SlotID:           p.SlotID,
		}
	}

	return rows
}
