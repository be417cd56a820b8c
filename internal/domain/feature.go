package domain

import "time"

// FeatureIcon is the closed set of icon keys the storefront can render.
type FeatureIcon string

const (
	IconShieldCheck FeatureIcon = "ShieldCheck"
	IconLeaf        FeatureIcon = "Leaf"
	IconClock       FeatureIcon = "Clock"
	IconZap         FeatureIcon = "Zap"
	IconStar        FeatureIcon = "Star"
	IconHeart       FeatureIcon = "Heart"
)

var featureIcons = map[FeatureIcon]bool{
	IconShieldCheck: true,
	IconLeaf:        true,
	IconClock:       true,
	IconZap:         true,
	IconStar:        true,
	IconHeart:       true,
}

// NormalizeIcon maps an arbitrary icon key onto the closed set, falling back
// to the default star icon for anything unknown.
func NormalizeIcon(s string) FeatureIcon {
	if featureIcons[FeatureIcon(s)] {
		return FeatureIcon(s)
	}
	return IconStar
}

// Feature is a selling point shown on the landing page.
type Feature struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"index" json:"title" form:"title"`
	Text      string    `json:"text" form:"text"`
	Icon      string    `gorm:"size:32" json:"icon" form:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feature) TableName() string {
	return "features"
}
