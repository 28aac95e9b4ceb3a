package entity

import "github.com/shopspring/decimal"

// ServiceCategory groups the clinic services shown on the services page.
type ServiceCategory struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relationships
	Services []Service `gorm:"foreignKey:ServiceCategoryID" json:"services,omitempty"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}

type Service struct {
	ID                int             `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceCategoryID int             `gorm:"not null;index" json:"service_category_id"`
	Name              string          `gorm:"type:varchar(255);not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Service) TableName() string {
	return "services"
}
