package dto

import (
	"tavola/internal/domains/assignment/model"
	catalogModel "tavola/internal/domains/catalog/model"
	catalogDto "tavola/internal/domains/catalog/model/dto"
)

type AvailableTablesResponse struct {
	SlotDate string                     `json:"slot_date"`
	SlotTime string                     `json:"slot_time"`
	SlotID   string                     `json:"slot_id"`
	Tables   []catalogDto.TableResponse `json:"tables"`
}

func (r *AvailableTablesResponse) FromModels(date, slotTime, slotID string, tables []catalogModel.Table) {
	r.SlotDate = date
	r.SlotTime = slotTime
	r.SlotID = slotID

	r.Tables = make([]catalogDto.TableResponse, len(tables))
	for i, table := range tables {
		r.Tables[i].FromModel(table)
	}
}

type PlanResponse struct {
	Type          string                     `json:"type"`
	GroupID       *string                    `json:"group_id,omitempty"`
	TotalCapacity int                        `json:"total_capacity"`
	Tables        []catalogDto.TableResponse `json:"tables"`
}

func (r *PlanResponse) FromModel(plan model.Plan) {
	r.Type = plan.Type
	r.GroupID = plan.GroupID
	r.TotalCapacity = plan.TotalCapacity()

	r.Tables = make([]catalogDto.TableResponse, len(plan.Tables))
	for i, table := range plan.Tables {
		r.Tables[i].FromModel(table)
	}
}
