package dto

import (
	"tavola/internal/domains/catalog/model"
	"tavola/shared"
	gDto "tavola/shared/dto"
	gModel "tavola/shared/model"
	"tavola/shared/timezone"

	"github.com/google/uuid"
)

type CreateAreaRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Active *bool  `json:"active" validate:"omitempty"`
}

func (c *CreateAreaRequest) ToModel(user string) model.Area {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Area{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Active: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAreaRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type AreaResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *AreaResponse) FromModel(mod model.Area) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetAreasResponse struct {
	Areas     []AreaResponse `json:"areas"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetAreasResponse) FromModels(models []model.Area, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Areas = make([]AreaResponse, len(models))
	for i, mod := range models {
		r.Areas[i].FromModel(mod)
	}
}

type CreateTableRequest struct {
	AreaID      string `json:"area_id"      validate:"required,uuid4"`
	Name        string `json:"name"         validate:"required,max=100"`
	Capacity    int    `json:"capacity"     validate:"required,min=1"`
	MinCapacity int    `json:"min_capacity" validate:"required,min=1"`
	MaxCapacity int    `json:"max_capacity" validate:"required,min=1,gtefield=MinCapacity"`
	Active      *bool  `json:"active"       validate:"omitempty"`
}

func (c *CreateTableRequest) ToModel(user string) model.Table {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Table{
		ID:          uuid.NewString(),
		AreaID:      c.AreaID,
		Name:        c.Name,
		Capacity:    c.Capacity,
		MinCapacity: c.MinCapacity,
		MaxCapacity: c.MaxCapacity,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTableRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Capacity    *int   `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	MinCapacity *int   `db:"min_capacity" json:"min_capacity" validate:"omitempty,min=1"`
	MaxCapacity *int   `db:"max_capacity" json:"max_capacity" validate:"omitempty,min=1"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
}

type TableResponse struct {
	ID          string `json:"id"`
	AreaID      string `json:"area_id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	MinCapacity int    `json:"min_capacity"`
	MaxCapacity int    `json:"max_capacity"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(mod model.Table) {
	r.ID = mod.ID
	r.AreaID = mod.AreaID
	r.Name = mod.Name
	r.Capacity = mod.Capacity
	r.MinCapacity = mod.MinCapacity
	r.MaxCapacity = mod.MaxCapacity
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}

type AreaTablesResponse struct {
	AreaID string          `json:"area_id"`
	Tables []TableResponse `json:"tables"`
}

func (r *AreaTablesResponse) FromModels(areaID string, models []model.Table) {
	r.AreaID = areaID

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}

type AreaGroupsResponse struct {
	AreaID string          `json:"area_id"`
	Groups []GroupResponse `json:"groups"`
}

func (r *AreaGroupsResponse) FromModels(areaID string, models []model.TableGroup) {
	r.AreaID = areaID

	r.Groups = make([]GroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}

type CreateGroupRequest struct {
	AreaID              string   `json:"area_id"               validate:"required,uuid4"`
	Name                string   `json:"name"                  validate:"required,max=100"`
	MaxCombinedCapacity int      `json:"max_combined_capacity" validate:"required,min=1"`
	TableIDs            []string `json:"table_ids"             validate:"required,min=2,dive,uuid4"`
	Active              *bool    `json:"active"                validate:"omitempty"`
}

func (c *CreateGroupRequest) ToModel(user string) model.TableGroup {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.TableGroup{
		ID:                  uuid.NewString(),
		AreaID:              c.AreaID,
		Name:                c.Name,
		MaxCombinedCapacity: c.MaxCombinedCapacity,
		Active:              active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ToMembers builds the ordered membership rows; join order follows the
// order table ids were submitted in.
func (c *CreateGroupRequest) ToMembers(groupID, user string) []model.GroupMember {
	members := make([]model.GroupMember, len(c.TableIDs))
	for i, tableID := range c.TableIDs {
		members[i] = model.GroupMember{
			ID:        uuid.NewString(),
			GroupID:   groupID,
			TableID:   tableID,
			JoinOrder: i + 1,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return members
}

type GroupResponse struct {
	ID                  string          `json:"id"`
	AreaID              string          `json:"area_id"`
	Name                string          `json:"name"`
	MaxCombinedCapacity int             `json:"max_combined_capacity"`
	Active              bool            `json:"active"`
	Tables              []TableResponse `json:"tables,omitempty"`
	gDto.Metadata
}

func (r *GroupResponse) FromModel(mod model.TableGroup) {
	r.ID = mod.ID
	r.AreaID = mod.AreaID
	r.Name = mod.Name
	r.MaxCombinedCapacity = mod.MaxCombinedCapacity
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetGroupsResponse struct {
	Groups    []GroupResponse `json:"groups"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGroupsResponse) FromModels(models []model.TableGroup, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Groups = make([]GroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}
