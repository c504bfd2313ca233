package core

import (
	"testing"

	"github.com/huangsam/busfactor/schema"
	"github.com/stretchr/testify/assert"
)

// TestResolveOwnership tests the per-file dominant owner resolution.
func TestResolveOwnership(t *testing.T) {
	t.Run("dominant owners", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"f1": {"Alice": 100},
			"f2": {"Alice": 80, "Bob": 20},
			"f3": {"Bob": 100},
			"f4": {"Charlie": 100},
		}

		ownership := ResolveOwnership(authorship)

		assert.Equal(t, schema.FileOwnership{
			"f1": "Alice",
			"f2": "Alice",
			"f3": "Bob",
			"f4": "Charlie",
		}, ownership)
	})

	t.Run("exact tie resolves to lexicographically smallest", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"f1": {"Zoe": 50, "Amy": 50},
		}

		ownership := ResolveOwnership(authorship)

		assert.Equal(t, "Amy", ownership["f1"])
	})

	t.Run("zero line counts yield no owner", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"empty.go": {"Alice": 0, "Bob": 0},
			"blank.go": {},
		}

		ownership := ResolveOwnership(authorship)

		assert.Equal(t, "", ownership["empty.go"])
		assert.Equal(t, "", ownership["blank.go"])
	})

	t.Run("empty input", func(t *testing.T) {
		ownership := ResolveOwnership(schema.FileAuthorship{})
		assert.Empty(t, ownership)
	})

	t.Run("owner always has positive lines", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"a.go": {"Alice": 1, "Bob": 0},
			"b.go": {"Carol": 0.5},
			"c.go": {"Dan": 0},
		}

		ownership := ResolveOwnership(authorship)

		for path, owner := range ownership {
			if owner == "" {
				continue
			}
			assert.Greater(t, authorship[path][owner], 0.0)
		}
	})

	t.Run("idempotent over identical input", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"f1": {"Alice": 10, "Bob": 10},
			"f2": {"Bob": 3, "Carol": 7},
		}

		first := ResolveOwnership(authorship)
		second := ResolveOwnership(authorship)

		assert.Equal(t, first, second)
	})

	t.Run("input not mutated", func(t *testing.T) {
		authorship := schema.FileAuthorship{
			"f1": {"Alice": 10},
		}
		original := authorship.Clone()

		ResolveOwnership(authorship)

		assert.Equal(t, original, authorship)
	})
}
