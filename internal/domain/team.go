package domain

import "time"

// TeamMember is a person shown on the about page.
type TeamMember struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"index" json:"name" form:"name"`
	Role      string    `gorm:"size:128" json:"role" form:"role"`
	ImageURL  string    `gorm:"size:1024;column:image_url" json:"image_url" form:"image_url"`
	Quote     string    `json:"quote" form:"quote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
