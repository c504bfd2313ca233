package core

import (
	"math"
	"time"

	"github.com/huangsam/busfactor/schema"
)

const (
	hoursPerDay = 24
	daysPerYear = 365
)

// ApplyDecay rescales every line count in the authorship map by an
// exponential recency factor derived from the contributor's most recent
// commit to that file: weight = exp(-decayRate * elapsedDays / 365).
// A contributor with no commit record for the file inside the supplied
// history window gets the fixed maximum-decay multiplier instead, so the
// signal is diminished without being zeroed.
//
// The result is a fresh map; the input authorship is never mutated.
// Weights are clamped to 1 so a commit timestamp in the future of now
// cannot inflate a contribution.
func ApplyDecay(authorship schema.FileAuthorship, history schema.FileHistory, decayRate float64, now time.Time) schema.FileAuthorship {
	weighted := make(schema.FileAuthorship, len(authorship))
	for path, lines := range authorship {
		weightedLines := make(map[string]float64, len(lines))
		for author, count := range lines {
			weightedLines[author] = count * decayWeight(history[path], author, decayRate, now)
		}
		weighted[path] = weightedLines
	}
	return weighted
}

// decayWeight computes the recency multiplier for one contributor on one
// file from that file's commit records.
func decayWeight(records []schema.CommitRecord, author string, decayRate float64, now time.Time) float64 {
	latest, found := mostRecentTouch(records, author)
	if !found {
		return schema.MaxDecayFactor
	}

	elapsedDays := now.Sub(latest).Hours() / hoursPerDay
	weight := math.Exp(-decayRate * elapsedDays / daysPerYear)
	return math.Min(weight, 1)
}

// mostRecentTouch scans the records for the latest timestamp attributed
// to author. Record order does not matter.
func mostRecentTouch(records []schema.CommitRecord, author string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, rec := range records {
		if rec.Author != author {
			continue
		}
		if !found || rec.Timestamp.After(latest) {
			latest = rec.Timestamp
			found = true
		}
	}
	return latest, found
}
