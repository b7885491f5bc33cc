package dto

import (
	"tavola/internal/domains/ledger/model"
)

type SlotStatusResponse struct {
	Date           string `json:"date"`
	SlotID         string `json:"slot_id"`
	Version        uint64 `json:"version"`
	TotalCapacity  int    `json:"total_capacity"`
	BookedCapacity int    `json:"booked_capacity"`
	Remaining      int    `json:"remaining"`
}

func (r *SlotStatusResponse) FromModel(mod model.SlotVersion) {
	r.Date = mod.SlotDate
	r.SlotID = mod.SlotID
	r.Version = mod.Version
	r.TotalCapacity = mod.TotalCapacity
	r.BookedCapacity = mod.BookedCapacity
	r.Remaining = mod.Remaining()
}

// ReserveResult reports the ledger state after a successful reserve or
// release, as observed by the writer that performed it.
type ReserveResult struct {
	Version   uint64 `json:"version"`
	Remaining int    `json:"remaining"`
}

type SyncRequest struct {
	Date   string `json:"date"    validate:"required,datetime=2006-01-02"`
	SlotID string `json:"slot_id" validate:"required,max=50"`
}
