package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerMap maps a question ID (stringified) to the selected option index (1..4).
// Unanswered questions are simply absent. The map is the API-level type; it is
// serialized to JSON only at the persistence edge.
type AnswerMap map[string]int

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan answers column of type %T", value)
	}
	if len(b) == 0 {
		*m = AnswerMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// Score is an immutable record of one quiz attempt. CreatedAt is the
// submission timestamp; there is no update path.
// swagger:model Score
type Score struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	QuizID     uint      `gorm:"index;not null" json:"quizId"`
	TotalScore float64   `gorm:"not null" json:"totalScore"` // percentage, 0..100
	Answers    AnswerMap `gorm:"type:text" json:"answers"`
}

func (Score) TableName() string {
	return "scores"
}
