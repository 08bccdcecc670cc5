package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanem2ms/depthplanes/segment"
)

// TestLoadFixture_AllScenariosBuildValidGrids is an integration-style check
// over every built-in fixture name: each must produce a 16x16 grid that the
// engine, at its default thresholds (the CLI's flag defaults), segments into
// at least one leaf.
func TestLoadFixture_AllScenariosBuildValidGrids(t *testing.T) {
	for _, scenario := range []string{"flat", "step", "lshape", "tilt"} {
		t.Run(scenario, func(t *testing.T) {
			grid, err := loadFixture(scenario, 16, 16)
			require.NoError(t, err)
			require.NotNil(t, grid)

			assert.Equal(t, 16, grid.Width())
			assert.Equal(t, 16, grid.Height())

			engine := segment.NewEngine()
			seg := engine.Segment(grid)
			assert.NotEmpty(t, seg.Leaves, "scenario %q should produce at least one leaf", scenario)
		})
	}
}

// TestLoadFixture_UnknownScenarioErrors verifies an unrecognized -scenario
// value is reported rather than silently falling back to a default fixture.
func TestLoadFixture_UnknownScenarioErrors(t *testing.T) {
	_, err := loadFixture("nonexistent", 16, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

// TestLoadFixture_StepScenarioSplitsIntoTwoClusters is an end-to-end sanity
// check wiring loadFixture straight into the segmentation engine, confirming
// the CLI's "step" fixture actually exercises the depth-step merge boundary.
func TestLoadFixture_StepScenarioSplitsIntoTwoClusters(t *testing.T) {
	grid, err := loadFixture("step", 16, 16)
	require.NoError(t, err)

	seg := segment.NewEngine().Segment(grid)
	assert.GreaterOrEqual(t, len(seg.Clusters), 2, "a depth step should split into at least two clusters")
}
