package model

import "time"

// swagger:model Quiz
type Quiz struct {
	BaseModel
	ChapterID  uint      `gorm:"index;not null" json:"chapterId"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	DateOfQuiz time.Time `json:"dateOfQuiz"`
	// Advisory duration in minutes. Stored and displayed, never enforced.
	TimeDuration int    `gorm:"default:0" json:"timeDuration"`
	Remarks      string `gorm:"type:text" json:"remarks"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID            uint   `gorm:"index;not null" json:"quizId"`
	QuestionStatement string `gorm:"type:text;not null" json:"questionStatement"`
	Option1           string `gorm:"size:255;not null" json:"option1"`
	Option2           string `gorm:"size:255;not null" json:"option2"`
	Option3           string `gorm:"size:255;not null" json:"option3"`
	Option4           string `gorm:"size:255;not null" json:"option4"`
	CorrectOption     int    `gorm:"not null" json:"correctOption"` // 1..4
}

func (Question) TableName() string {
	return "questions"
}

// OptionText returns the option text at the given 1-based index,
// or "" for an index outside 1..4.
func (q *Question) OptionText(idx int) string {
	switch idx {
	case 1:
		return q.Option1
	case 2:
		return q.Option2
	case 3:
		return q.Option3
	case 4:
		return q.Option4
	}
	return ""
}
