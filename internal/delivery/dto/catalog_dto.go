package dto

import "github.com/shopspring/decimal"

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type HMOResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ServiceResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type ServiceCategoryResponse struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Services    []ServiceResponse `json:"services"`
}
