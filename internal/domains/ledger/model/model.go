package model

const (
	TableName  = "slot_versions"
	EntityName = "slot_version"

	FieldSlotDate       = "slot_date"
	FieldSlotID         = "slot_id"
	FieldVersion        = "version"
	FieldTotalCapacity  = "total_capacity"
	FieldBookedCapacity = "booked_capacity"
)

// SlotVersion is the capacity ledger row for one (date, meal slot) pair.
// Version starts at 1 and is bumped on every successful mutation; it is the
// compare half of the compare-and-swap update. Rows are created lazily and
// never deleted.
type SlotVersion struct {
	SlotDate       string `db:"slot_date"`
	SlotID         string `db:"slot_id"`
	Version        uint64 `db:"version"`
	TotalCapacity  int    `db:"total_capacity"`
	BookedCapacity int    `db:"booked_capacity"`
}

// Remaining returns the seats still available in the slot.
func (s *SlotVersion) Remaining() int {
	return s.TotalCapacity - s.BookedCapacity
}
