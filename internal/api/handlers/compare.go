package handlers

import (
	"errors"
	"net/http"

	"powergas-profit/internal/api/models"
	"powergas-profit/internal/compare"
	"powergas-profit/internal/config"
	"powergas-profit/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompareHandler handles what-if scenario comparison requests
type CompareHandler struct {
	logger *zap.Logger
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(logger *zap.Logger) *CompareHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompareHandler{logger: logger}
}

// Compare handles POST /api/v1/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	entries, decodeSkips, err := h.buildEntries(req)
	if err != nil {
		writeComputeError(c, err)
		return
	}
	if len(entries) == 0 {
		// Either the request had no scenarios at all, or lenient mode
		// skipped every one of them; a ranking over nothing is rejected
		// with the skips named.
		if len(decodeSkips) > 0 {
			failures := make([]compare.ScenarioFailure, len(decodeSkips))
			for i, s := range decodeSkips {
				failures[i] = compare.ScenarioFailure{Name: s.Name, Err: errors.New(s.Reason)}
			}
			writeComputeError(c, &compare.BatchError{Failures: failures})
			return
		}
		writeComputeError(c, compare.ErrEmptyScenarioSet)
		return
	}

	rep, err := compare.Compare(h.logger, entries, compare.Options{Lenient: req.Options.Lenient})
	if err != nil {
		writeComputeError(c, err)
		return
	}
	// Scenarios dropped at decode time are part of the report too; nothing
	// is excluded without being named.
	rep.Skipped = append(decodeSkips, rep.Skipped...)

	c.JSON(http.StatusOK, buildCompareResponse(rep))
}

// buildEntries resolves each scenario payload to full trip inputs. When a
// base trip is supplied, scenario trips are overlays onto it, mirroring the
// scenarios-file shape. In lenient mode scenarios with missing fields become
// skips; otherwise any failure rejects the batch.
func (h *CompareHandler) buildEntries(req models.CompareRequest) ([]model.ScenarioEntry, []compare.Skipped, error) {
	var base *config.TripConfig
	if req.BaseTrip != nil {
		bc := tripConfigFromPayload(*req.BaseTrip)
		base = &bc
	}

	entries := make([]model.ScenarioEntry, 0, len(req.Scenarios))
	var failures []compare.ScenarioFailure
	for _, sc := range req.Scenarios {
		tc := tripConfigFromPayload(sc.Trip)
		if base != nil {
			tc = config.MergeTrip(*base, tc)
		}
		trip, err := tc.ToModel()
		if err != nil {
			failures = append(failures, compare.ScenarioFailure{Name: sc.Name, Err: err})
			continue
		}
		entries = append(entries, model.ScenarioEntry{
			Name:        sc.Name,
			Description: sc.Description,
			Trip:        trip,
		})
	}
	if len(failures) > 0 && !req.Options.Lenient {
		return nil, nil, &compare.BatchError{Failures: failures}
	}
	skipped := make([]compare.Skipped, len(failures))
	for i, f := range failures {
		skipped[i] = compare.Skipped{Name: f.Name, Reason: f.Err.Error()}
	}
	return entries, skipped, nil
}

func buildCompareResponse(rep *compare.Report) models.CompareResponse {
	rankings := make([]models.RankedScenario, len(rep.Ranked))
	for i, r := range rep.Ranked {
		rankings[i] = models.RankedScenario{
			Rank:        i + 1,
			Name:        r.Entry.Name,
			Description: r.Entry.Description,
			Result:      tripResultPayload(r.Result),
		}
	}

	ranges := make([]models.ComponentRange, len(rep.Ranges))
	for i, cr := range rep.Ranges {
		ranges[i] = models.ComponentRange{
			Component: string(cr.Component),
			Min:       cr.Min,
			Max:       cr.Max,
			Range:     cr.Range,
		}
	}

	skipped := make([]models.SkippedScenario, len(rep.Skipped))
	for i, s := range rep.Skipped {
		skipped[i] = models.SkippedScenario{Name: s.Name, Reason: s.Reason}
	}

	resp := models.CompareResponse{
		Rankings:              rankings,
		BestScenario:          rep.Best.Entry.Name,
		WorstScenario:         rep.Worst.Entry.Name,
		ProfitDiff:            rep.ProfitDiff,
		MarginPartial:         rep.MarginPartial,
		ComponentRanges:       ranges,
		DominantCostComponent: string(rep.DominantComponent),
		Skipped:               skipped,
	}
	if rep.MarginDiff.Defined {
		pct := rep.MarginDiff.Pct
		resp.MarginDiff = &pct
	}
	return resp
}
