package engine

import (
	"github.com/piwi3910/PlankLayout/internal/model"
)

// ComparisonScenario defines a named layout configuration to compare.
type ComparisonScenario struct {
	Name   string
	Config model.LayoutConfig
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario. Err is set when the scenario could not be laid out.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.Result
	Err           error
	PlanksUsed    int
	UncutPlanks   int
	ReusedPieces  int
	LeftOverCount int
	WastePercent  float64
}

// CompareScenarios lays out each scenario with the same options and returns
// the results in scenario order. A failing scenario does not stop the others.
func CompareScenarios(scenarios []ComparisonScenario, opts ...Option) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := Calculate(scenario.Config, opts...)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PlanksUsed:    result.TotalPlanksUsed,
			UncutPlanks:   result.UncutPlankCount,
			ReusedPieces:  result.ReusedPieces(),
			LeftOverCount: result.LeftOverCount,
			WastePercent:  result.WastePercent(),
		})
	}

	return results
}

// Best returns the index of the successful result using the fewest planks,
// or -1 when every scenario failed. Earlier scenarios win ties.
func Best(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best < 0 || r.PlanksUsed < results[best].PlanksUsed {
			best = i
		}
	}
	return best
}

// BuildDefaultScenarios generates what-if alternatives around base by
// toggling staggering and randomized lengths. Duplicate configurations
// are dropped and base always comes first.
func BuildDefaultScenarios(base model.LayoutConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Config: base},
	}

	variants := []struct {
		name      string
		staggered bool
		randomize bool
	}{
		{"Straight", false, false},
		{"Staggered", true, false},
		{"Randomized Lengths", false, true},
		{"Staggered + Randomized", true, true},
	}

	for _, v := range variants {
		cfg := base
		cfg.Staggered = v.staggered
		cfg.RandomizeLengths = v.randomize
		if containsConfig(scenarios, cfg) {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{Name: v.name, Config: cfg})
	}

	return scenarios
}

func containsConfig(scenarios []ComparisonScenario, cfg model.LayoutConfig) bool {
	for _, s := range scenarios {
		if s.Config == cfg {
			return true
		}
	}
	return false
}
