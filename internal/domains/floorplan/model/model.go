package model

import "tavola/shared/model"

const (
	TableName  = "floor_plans"
	EntityName = "floor_plan"

	FieldID       = "id"
	FieldAreaID   = "area_id"
	FieldTitle    = "title"
	FieldImageURL = "image_url"
)

// FloorPlan is a seating-layout image attached to a dining area. Staff use
// it to see which physical tables a group actually joins.
type FloorPlan struct {
	ID       string `db:"id"`
	AreaID   string `db:"area_id"`
	Title    string `db:"title"`
	ImageURL string `db:"image_url"`
	model.Metadata
}
