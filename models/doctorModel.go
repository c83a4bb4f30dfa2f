package models

// Department model
type Department struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Name string `gorm:"size:100;not null;column:name"`
}

func (Department) TableName() string {
	return "departments"
}

// Specialization model
type Specialization struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Name string `gorm:"size:100;not null;column:name"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// Doctor model
type Doctor struct {
	ID               uint            `gorm:"primaryKey;autoIncrement;column:id"`
	FullName         string          `gorm:"size:150;not null;index;column:full_name"`
	DepartmentID     uint            `gorm:"not null;index;column:department_id"`
	SpecializationID uint            `gorm:"not null;index;column:specialization_id"`
	Department       *Department     `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Specialization   *Specialization `gorm:"foreignKey:SpecializationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}
