package engine

// staggerPattern holds the first-plank offsets applied row by row when
// staggering is enabled. A negative value shortens the plank by that amount;
// a non-negative value is used as the cut width directly (0 leaves it whole).
var staggerPattern = [...]int{0, 50, -30, 30, -20, 20}

// StaggerPatternLen is the number of rows after which the pattern repeats.
const StaggerPatternLen = len(staggerPattern)

// StaggerOffset returns the default pattern value for the given row.
func StaggerOffset(row int) int {
	return patternValue(staggerPattern[:], row)
}

// StaggerCut returns the cut width of a row's first plank under the default
// pattern. 0 means the plank is laid whole.
func StaggerCut(row, plankWidth int) int {
	return resolveStagger(StaggerOffset(row), plankWidth)
}

func patternValue(pattern []int, row int) int {
	n := len(pattern)
	if n == 0 {
		return 0
	}
	return pattern[((row%n)+n)%n]
}

func resolveStagger(value, plankWidth int) int {
	if value < 0 {
		return plankWidth + value
	}
	return value
}
