package core

import (
	"fmt"
	"time"

	"github.com/huangsam/busfactor/schema"
)

// MethodConfig carries the tunables a calculation method needs. Now is
// injected so the decay weighting is reproducible in tests. The history
// lookback window is not part of this config: it bounds collection, so
// any history handed to a method has already been windowed.
type MethodConfig struct {
	DecayRate float64
	Threshold float64
	Now       time.Time
}

// DefaultMethodConfig returns a config with the documented defaults and
// the current wall-clock time.
func DefaultMethodConfig() MethodConfig {
	return MethodConfig{
		DecayRate: schema.DefaultDecayRate,
		Threshold: schema.DefaultThreshold,
		Now:       time.Now(),
	}
}

// CalculationMethod computes a bus factor report from collected
// repository data. Implementations must not mutate the input.
type CalculationMethod interface {
	Name() schema.MethodName
	Description() string
	Run(input *schema.AnalysisInput, cfg MethodConfig) *schema.Report
}

type standardMethod struct{}

func (standardMethod) Name() schema.MethodName { return schema.StandardMethod }

func (standardMethod) Description() string {
	return "Ownership from raw blame line counts"
}

func (m standardMethod) Run(input *schema.AnalysisInput, cfg MethodConfig) *schema.Report {
	ownership := ResolveOwnership(input.Authorship)
	doa := ComputeDOA(ownership)
	removal := SimulateRemoval(doa, ownership, cfg.Threshold)
	return BuildReport(m.Name(), m.Description(), input.Authorship, ownership, doa, removal, cfg.Threshold, input.Errors)
}

type decayMethod struct{}

func (decayMethod) Name() schema.MethodName { return schema.DecayMethod }

func (decayMethod) Description() string {
	return "Ownership from blame line counts with exponential recency decay"
}

func (m decayMethod) Run(input *schema.AnalysisInput, cfg MethodConfig) *schema.Report {
	weighted := ApplyDecay(input.Authorship, input.History, cfg.DecayRate, cfg.Now)
	ownership := ResolveOwnership(weighted)
	doa := ComputeWeightedDOA(ownership, weighted)
	removal := SimulateRemoval(doa, ownership, cfg.Threshold)
	return BuildReport(m.Name(), m.Description(), weighted, ownership, doa, removal, cfg.Threshold, input.Errors)
}

var methodRegistry = map[schema.MethodName]CalculationMethod{
	schema.StandardMethod: standardMethod{},
	schema.DecayMethod:    decayMethod{},
}

// MethodDefinitions returns the static definitions of all registered
// methods, in the canonical order.
func MethodDefinitions() []schema.MethodDefinition {
	defs := make([]schema.MethodDefinition, 0, len(schema.AllMethods))
	for _, name := range schema.AllMethods {
		m := methodRegistry[name]
		defs = append(defs, schema.MethodDefinition{
			Name:        string(m.Name()),
			Description: m.Description(),
		})
	}
	return defs
}

// LookupMethod returns the calculation method registered under name.
func LookupMethod(name schema.MethodName) (CalculationMethod, error) {
	method, ok := methodRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculation method %q", name)
	}
	return method, nil
}
