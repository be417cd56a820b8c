package domain

import "time"

// Feedback is an anonymous message left by a storefront visitor.
type Feedback struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Message   string    `json:"message" form:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
