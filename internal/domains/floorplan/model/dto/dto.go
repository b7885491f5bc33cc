package dto

import (
	"mime/multipart"
	"tavola/internal/domains/floorplan/model"
	"tavola/shared"
	gDto "tavola/shared/dto"
	gModel "tavola/shared/model"
	"tavola/shared/timezone"

	"github.com/google/uuid"
)

type CreateFloorPlanRequest struct {
	AreaID   string `json:"area_id"   validate:"required,uuid4"`
	Title    string `json:"title"     validate:"required,min=3,max=100"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

func (c *CreateFloorPlanRequest) ToModel(user string) model.FloorPlan {
	return model.FloorPlan{
		ID:       uuid.NewString(),
		AreaID:   c.AreaID,
		Title:    c.Title,
		ImageURL: c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFloorPlanRequest struct {
	Title    string `db:"title"     json:"title"     validate:"omitempty,min=3,max=100"`
	ImageURL string `db:"image_url" json:"image_url" validate:"omitempty,url"`
}

type FloorPlanResponse struct {
	ID       string `json:"id"`
	AreaID   string `json:"area_id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	gDto.Metadata
}

func (r *FloorPlanResponse) FromModel(mod model.FloorPlan) {
	r.ID = mod.ID
	r.AreaID = mod.AreaID
	r.Title = mod.Title
	r.ImageURL = mod.ImageURL
	r.Metadata.FromModel(mod.Metadata)
}

type GetFloorPlansResponse struct {
	FloorPlans []FloorPlanResponse `json:"floor_plans"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetFloorPlansResponse) FromModels(models []model.FloorPlan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.FloorPlans = make([]FloorPlanResponse, len(models))
	for i, m := range models {
		r.FloorPlans[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
