package model

// swagger:model Subject
type Subject struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Subject) TableName() string {
	return "subjects"
}

// swagger:model Chapter
type Chapter struct {
	BaseModel
	SubjectID   uint   `gorm:"index;not null" json:"subjectId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Chapter) TableName() string {
	return "chapters"
}
