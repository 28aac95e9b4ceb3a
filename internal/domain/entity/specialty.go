package entity

// Specialty is static reference data, e.g. "Cardiology".
type Specialty struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
}

func (Specialty) TableName() string {
	return "doctor_specialties"
}
