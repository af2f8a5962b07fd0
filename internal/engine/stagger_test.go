package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaggerOffset_Cycles(t *testing.T) {
	want := []int{0, 50, -30, 30, -20, 20}
	for row := 0; row < 3*StaggerPatternLen; row++ {
		assert.Equal(t, want[row%len(want)], StaggerOffset(row), "row %d", row)
	}
	assert.Equal(t, 20, StaggerOffset(-1))
}

func TestStaggerCut(t *testing.T) {
	assert.Equal(t, 0, StaggerCut(0, 130))
	assert.Equal(t, 50, StaggerCut(1, 130))
	assert.Equal(t, 100, StaggerCut(2, 130))
	assert.Equal(t, 30, StaggerCut(3, 130))
	assert.Equal(t, 110, StaggerCut(4, 130))
	assert.Equal(t, 20, StaggerCut(5, 130))
	assert.Equal(t, -10, StaggerCut(2, 20), "negative offsets longer than the plank are not clamped")
}

func TestPatternValue_EmptyPattern(t *testing.T) {
	assert.Equal(t, 0, patternValue(nil, 4))
}
