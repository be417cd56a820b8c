package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIcon(t *testing.T) {
	for _, known := range []FeatureIcon{IconShieldCheck, IconLeaf, IconClock, IconZap, IconStar, IconHeart} {
		assert.Equal(t, known, NormalizeIcon(string(known)))
	}

	assert.Equal(t, IconStar, NormalizeIcon(""))
	assert.Equal(t, IconStar, NormalizeIcon("Rocket"))
	assert.Equal(t, IconStar, NormalizeIcon("shieldcheck"), "icon keys are case sensitive")
}
