package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}
	return &dto.SpecialtyResponse{ID: specialty.ID, Name: specialty.Name}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		responses[i] = dto.SpecialtyResponse{ID: s.ID, Name: s.Name}
	}
	return responses
}

func HMOsToResponses(hmos []entity.HMO) []dto.HMOResponse {
	responses := make([]dto.HMOResponse, len(hmos))
	for i, h := range hmos {
		responses[i] = dto.HMOResponse{ID: h.ID, Name: h.Name}
	}
	return responses
}

func ServiceCategoriesToResponses(categories []entity.ServiceCategory) []dto.ServiceCategoryResponse {
	responses := make([]dto.ServiceCategoryResponse, len(categories))
	for i, c := range categories {
		services := make([]dto.ServiceResponse, len(c.Services))
		for j, s := range c.Services {
			services[j] = dto.ServiceResponse{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Price:       s.Price,
			}
		}
		responses[i] = dto.ServiceCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Services:    services,
		}
	}
	return responses
}
