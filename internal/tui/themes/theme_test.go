package themes

import (
	"testing"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestTierColor(t *testing.T) {
	theme := Default
	assert.Equal(t, theme.Success, theme.TierColor(finance.TierLow))
	assert.Equal(t, theme.Warning, theme.TierColor(finance.TierMedium))
	assert.Equal(t, theme.Error, theme.TierColor(finance.TierHigh))
}
