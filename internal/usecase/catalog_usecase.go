package usecase

import (
	"context"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase serves reference data. Lists are read through the catalog
// cache; a cache outage only costs a database round trip.
type CatalogUsecase interface {
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
	ListHMOs(ctx context.Context) ([]dto.HMOResponse, error)
	ListServices(ctx context.Context) ([]dto.ServiceCategoryResponse, error)
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	catalogRepo repository.CatalogRepository
	cache       service.CatalogCache
}

func NewCatalogUsecase(db *gorm.DB, log *logrus.Logger, catalogRepo repository.CatalogRepository, cache service.CatalogCache) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		catalogRepo: catalogRepo,
		cache:       cache,
	}
}

func (u *catalogUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	return readThrough(ctx, u, service.CatalogKeySpecialties, func(db *gorm.DB) ([]dto.SpecialtyResponse, error) {
		specialties, err := u.catalogRepo.FindAllSpecialties(db)
		if err != nil {
			return nil, err
		}
		return converter.SpecialtiesToResponses(specialties), nil
	})
}

func (u *catalogUsecase) ListHMOs(ctx context.Context) ([]dto.HMOResponse, error) {
	return readThrough(ctx, u, service.CatalogKeyHMOs, func(db *gorm.DB) ([]dto.HMOResponse, error) {
		hmos, err := u.catalogRepo.FindAllHMOs(db)
		if err != nil {
			return nil, err
		}
		return converter.HMOsToResponses(hmos), nil
	})
}

func (u *catalogUsecase) ListServices(ctx context.Context) ([]dto.ServiceCategoryResponse, error) {
	return readThrough(ctx, u, service.CatalogKeyServices, func(db *gorm.DB) ([]dto.ServiceCategoryResponse, error) {
		categories, err := u.catalogRepo.FindAllServiceCategories(db)
		if err != nil {
			return nil, err
		}
		return converter.ServiceCategoriesToResponses(categories), nil
	})
}

func readThrough[T any](ctx context.Context, u *catalogUsecase, key string, load func(db *gorm.DB) (T, error)) (T, error) {
	var cached T
	hit, err := u.cache.Get(ctx, key, &cached)
	if err != nil {
		u.log.WithField("key", key).Warnf("Failed to read catalog cache: %+v", err)
	}
	if hit {
		return cached, nil
	}

	value, err := load(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithField("key", key).Warnf("Failed to load catalog: %+v", err)
		var zero T
		return zero, &InternalFault{Op: "list " + key, Err: err}
	}

	if err := u.cache.Set(ctx, key, value); err != nil {
		u.log.WithField("key", key).Warnf("Failed to write catalog cache: %+v", err)
	}
	return value, nil
}
