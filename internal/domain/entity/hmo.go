package entity

// HMO is an insurance plan a doctor may accept.
type HMO struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Relationships
	Doctors []Doctor `gorm:"many2many:doctor_hmos" json:"doctors,omitempty"`
}

func (HMO) TableName() string {
	return "hmos"
}
