// Package compare ranks what-if sourcing scenarios for one customer
// delivery and attributes the profit gap to the cost component driving it.
package compare

import (
	"sort"
	"sync"

	"powergas-profit/internal/model"
	"powergas-profit/internal/profit"

	"go.uber.org/zap"
)

// Options controls how the comparator treats invalid scenarios.
type Options struct {
	// Lenient excludes scenarios that fail validation and records them as
	// skipped, instead of rejecting the whole batch. The default (strict)
	// rejects everything, since a ranking over an incomplete set is
	// misleading.
	Lenient bool
}

// Ranked pairs a scenario with its computed breakdown.
type Ranked struct {
	Entry  model.ScenarioEntry
	Result model.ProfitabilityResult
}

// Skipped records a scenario excluded in lenient mode. Every exclusion is
// named; nothing drops out silently.
type Skipped struct {
	Name   string
	Reason string
}

// ComponentRange is the max-min spread of one cost component across the
// compared scenarios.
type ComponentRange struct {
	Component model.CostComponent
	Min       float64
	Max       float64
	Range     float64
}

// Report is the full comparison output. It carries the raw ranked list so a
// renderer can reconstruct any displayed summary without re-deriving math.
type Report struct {
	Ranked []Ranked

	Best  Ranked
	Worst Ranked

	ProfitDiff float64
	// MarginDiff is undefined (and MarginPartial set) when either the best
	// or worst scenario has no defined margin.
	MarginDiff    model.Margin
	MarginPartial bool

	// Ranges holds one entry per cost component, in fixed priority order.
	Ranges            []ComponentRange
	DominantComponent model.CostComponent

	Skipped []Skipped
}

// Compare computes every scenario, ranks by profit descending (ties broken
// by ascending trip_id) and derives best/worst deltas and the dominant cost
// driver. Scenarios are independent pure computations, so they fan out
// across goroutines and are collected before ranking.
func Compare(logger *zap.Logger, entries []model.ScenarioEntry, opts Options) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(entries) == 0 {
		return nil, ErrEmptyScenarioSet
	}

	results := make([]model.ProfitabilityResult, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i := range entries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = profit.Compute(entries[i].Trip)
		}(i)
	}
	wg.Wait()

	ranked := make([]Ranked, 0, len(entries))
	var failures []ScenarioFailure
	var skipped []Skipped
	for i, entry := range entries {
		if errs[i] != nil {
			failures = append(failures, ScenarioFailure{Name: entry.Name, Err: errs[i]})
			skipped = append(skipped, Skipped{Name: entry.Name, Reason: errs[i].Error()})
			logger.Warn("scenario failed validation",
				zap.String("op", "compare.Compare"),
				zap.String("scenario", entry.Name),
				zap.Error(errs[i]),
			)
			continue
		}
		ranked = append(ranked, Ranked{Entry: entry, Result: results[i]})
	}

	if len(failures) > 0 && !opts.Lenient {
		return nil, &BatchError{Failures: failures}
	}
	if len(ranked) == 0 {
		// Lenient mode with nothing left to rank is still a batch failure.
		return nil, &BatchError{Failures: failures}
	}

	sort.Slice(ranked, func(i, j int) bool {
		pi, pj := ranked[i].Result.Profit, ranked[j].Result.Profit
		if pi != pj {
			return pi > pj
		}
		return ranked[i].Result.TripID < ranked[j].Result.TripID
	})

	best := ranked[0]
	worst := ranked[len(ranked)-1]

	rep := &Report{
		Ranked:     ranked,
		Best:       best,
		Worst:      worst,
		ProfitDiff: best.Result.Profit - worst.Result.Profit,
		Skipped:    skipped,
	}

	if best.Result.Margin.Defined && worst.Result.Margin.Defined {
		rep.MarginDiff = model.DefinedMargin(best.Result.Margin.Pct - worst.Result.Margin.Pct)
	} else {
		rep.MarginDiff = model.UndefinedMargin()
		rep.MarginPartial = true
	}

	rep.Ranges = componentRanges(ranked)
	rep.DominantComponent = dominantComponent(rep.Ranges)

	logger.Debug("comparison complete",
		zap.String("op", "compare.Compare"),
		zap.Int("scenarios", len(ranked)),
		zap.Int("skipped", len(skipped)),
		zap.String("best", best.Entry.Name),
		zap.String("dominant_component", string(rep.DominantComponent)),
	)
	return rep, nil
}

func componentRanges(ranked []Ranked) []ComponentRange {
	out := make([]ComponentRange, 0, len(model.CostComponents))
	for _, comp := range model.CostComponents {
		cr := ComponentRange{Component: comp}
		for i, r := range ranked {
			v := r.Result.Component(comp)
			if i == 0 || v < cr.Min {
				cr.Min = v
			}
			if i == 0 || v > cr.Max {
				cr.Max = v
			}
		}
		cr.Range = cr.Max - cr.Min
		out = append(out, cr)
	}
	return out
}

// dominantComponent picks the component with the strictly largest range.
// Ranges is already in the fixed priority order, so keeping the first
// maximum applies the tie-break only on exact equality.
func dominantComponent(ranges []ComponentRange) model.CostComponent {
	dom := ranges[0]
	for _, cr := range ranges[1:] {
		if cr.Range > dom.Range {
			dom = cr
		}
	}
	return dom.Component
}
