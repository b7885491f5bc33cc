package service

import (
	"context"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/infras/s3"
	"tavola/internal/domains/floorplan/model"
	"tavola/internal/domains/floorplan/model/dto"
	"tavola/internal/domains/floorplan/repository"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFloorPlan    = "floorplan:get"
	cacheGetAllFloorPlan = "floorplan:get_all"
)

type FloorPlan interface {
	Create(ctx context.Context, req dto.CreateFloorPlanRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFloorPlansResponse, error)
	Get(ctx context.Context, id string) (dto.FloorPlanResponse, error)
	Update(ctx context.Context, req dto.UpdateFloorPlanRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.FloorPlan
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.FloorPlan, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) FloorPlan {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFloorPlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFloorPlan)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFloorPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFloorPlan, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count floor plans")

		return res, fmt.Errorf("failed to count floor plans: %w", err)
	}

	plans, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor plans")

		return res, fmt.Errorf("failed to get floor plans: %w", err)
	}

	res.FromModels(plans, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save floor plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FloorPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFloorPlan, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	plan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor plan")

		return res, fmt.Errorf("failed to get floor plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return res, failure.NotFound("floor plan not found") //nolint:wrapcheck
	}

	res.FromModel(plan)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save floor plan to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFloorPlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check floor plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("floor plan not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		return fmt.Errorf("failed to update floor plan: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFloorPlan, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete floor plan cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFloorPlan)
	}()

	return nil
}

// Delete removes the row first, the stored image after. A failed S3 delete
// only leaks an orphaned object, never a dangling database reference.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	plan, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get floor plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return failure.NotFound("floor plan not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete floor plan: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFloorPlan, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete floor plan cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFloorPlan)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, plan.ImageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", plan.ImageURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete floor plan image from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	res.FromModel(url, req.Image.Filename)

	return res, nil
}
