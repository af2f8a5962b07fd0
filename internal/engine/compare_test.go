package engine

import (
	"testing"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios_DropsDuplicates(t *testing.T) {
	base := model.DefaultLayoutConfig() // staggered, not randomized

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 4)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, base, scenarios[0].Config)

	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	assert.NotContains(t, names, "Staggered")
	assert.Contains(t, names, "Straight")
	assert.Contains(t, names, "Randomized Lengths")
	assert.Contains(t, names, "Staggered + Randomized")
}

func TestCompareScenarios(t *testing.T) {
	base := model.DefaultLayoutConfig()
	base.Staggered = false

	results := CompareScenarios(BuildDefaultScenarios(base), WithSeed(5))

	require.Len(t, results, 4)
	first := results[0]
	require.NoError(t, first.Err)
	assert.Equal(t, 70, first.PlanksUsed)
	assert.Equal(t, 64, first.UncutPlanks)
	assert.Equal(t, 6, first.LeftOverCount)
	assert.Equal(t, first.Result.ReusedPieces(), first.ReusedPieces)
	assert.InDelta(t, first.Result.WastePercent(), first.WastePercent, 1e-9)
}

func TestCompareScenarios_FailureDoesNotStopOthers(t *testing.T) {
	bad := model.LayoutConfig{
		Room:      model.Dimensions{Width: 40, Height: 100},
		Plank:     model.Dimensions{Width: 130, Height: 25},
		Staggered: true,
	}
	good := model.DefaultLayoutConfig()

	results := CompareScenarios([]ComparisonScenario{
		{Name: "bad", Config: bad},
		{Name: "good", Config: good},
	}, WithSeed(1))

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, ErrConfigurationOverflow)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, Best(results))
}

func TestBest(t *testing.T) {
	results := []ComparisonResult{
		{PlanksUsed: 12},
		{PlanksUsed: 10},
		{PlanksUsed: 10},
		{PlanksUsed: 1, Err: ErrConfigurationOverflow},
	}
	assert.Equal(t, 1, Best(results))
	assert.Equal(t, -1, Best(nil))
}
