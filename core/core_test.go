package core

import (
	"testing"
	"time"

	"github.com/huangsam/busfactor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunStandardAnalysis tests the pure library entry point.
func TestRunStandardAnalysis(t *testing.T) {
	t.Run("mixed ownership", func(t *testing.T) {
		report := RunStandardAnalysis(schema.FileAuthorship{
			"f1": {"Alice": 100},
			"f2": {"Alice": 80, "Bob": 20},
			"f3": {"Bob": 100},
			"f4": {"Charlie": 100},
		})

		assert.Equal(t, 2, report.Summary.BusFactor)
		assert.Equal(t, schema.HighRisk, report.Interpretation.Risk)
	})

	t.Run("empty repository", func(t *testing.T) {
		report := RunStandardAnalysis(schema.FileAuthorship{})

		assert.Equal(t, 0, report.Summary.BusFactor)
		assert.Nil(t, report.Analysis.FinalOwnerlessRatio)
		assert.Empty(t, report.TopContributors)
	})
}

// TestRunTimeWeightedAnalysis tests the decay entry point.
func TestRunTimeWeightedAnalysis(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg := MethodConfig{
		DecayRate: schema.DefaultDecayRate,
		Threshold: schema.DefaultThreshold,
		Now:       now,
	}

	t.Run("recency flips ownership", func(t *testing.T) {
		// Alice wrote more lines, but her knowledge is four years stale
		// while Bob touched the file last month.
		authorship := schema.FileAuthorship{
			"f1": {"Alice": 100, "Bob": 60},
		}
		history := schema.FileHistory{
			"f1": {
				{Author: "Alice", Timestamp: now.AddDate(-4, 0, 0)},
				{Author: "Bob", Timestamp: now.AddDate(0, -1, 0)},
			},
		}

		report := RunTimeWeightedAnalysis(authorship, history, cfg)

		require.Len(t, report.TopContributors, 2)
		assert.Equal(t, "Bob", report.TopContributors[0].Author)
	})

	t.Run("report carries the decay method name", func(t *testing.T) {
		report := RunTimeWeightedAnalysis(schema.FileAuthorship{
			"f1": {"Alice": 10},
		}, nil, cfg)

		assert.Equal(t, string(schema.DecayMethod), report.Analysis.Method)
		assert.Equal(t, 1, report.Summary.BusFactor)
	})
}
