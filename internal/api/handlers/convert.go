package handlers

import (
	"errors"
	"net/http"

	"powergas-profit/internal/api/models"
	"powergas-profit/internal/compare"
	"powergas-profit/internal/config"
	"powergas-profit/internal/model"

	"github.com/gin-gonic/gin"
)

func tripConfigFromPayload(p models.TripPayload) config.TripConfig {
	return config.TripConfig{
		TripID:          p.TripID,
		MotherStation:   p.MotherStation,
		DaughterStation: p.DaughterStation,

		GasVolume: p.GasVolume,
		GasPrice:  p.GasPrice,

		GasCost:   p.GasCost,
		PlantCost: p.PlantCost,
		GACost:    p.GACost,

		TruckDepreciation:      p.TruckDepreciation,
		TruckInsuranceInterest: p.TruckInsuranceInterest,
		FuelCost:               p.FuelCost,
		TruckTurnaroundTime:    p.TruckTurnaroundTime,

		TruckingModel:        p.TruckingModel,
		FixedTruckingCost:    p.FixedTruckingCost,
		VariableTruckingCost: p.VariableTruckingCost,
		RoundTripDistance:    p.RoundTripDistance,
		TruckingDayRate:      p.TruckingDayRate,
		TripDays:             p.TripDays,

		SkidDepreciation:   p.SkidDepreciation,
		SkidTurnaroundTime: p.SkidTurnaroundTime,
	}
}

func tripResultPayload(res model.ProfitabilityResult) models.TripResult {
	out := models.TripResult{
		TripID:          res.TripID,
		MotherStation:   res.MotherStation,
		DaughterStation: res.DaughterStation,
		Revenue:         res.Revenue,
		CostsBreakdown: models.CostsBreakdown{
			ProductionCosts: res.ProductionCost,
			TruckExpenses:   res.TruckExpense,
			TruckingCosts:   res.TruckingCost,
			SkidCosts:       res.SkidCost,
			TotalCosts:      res.TotalCost,
		},
		Profit: res.Profit,
	}
	if res.Margin.Defined {
		pct := res.Margin.Pct
		out.MarginPct = &pct
	}
	return out
}

// writeComputeError maps calculator/comparator errors onto stable API error
// codes. Validation problems are client errors; anything else is a 500.
func writeComputeError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	var nnErr *model.NonNegativeError
	var batchErr *compare.BatchError

	switch {
	case errors.Is(err, compare.ErrEmptyScenarioSet):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_SCENARIO_SET",
				Message: err.Error(),
			},
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
				Details: map[string]interface{}{"field": vErr.Field},
			},
		})
	case errors.As(err, &nnErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NON_NEGATIVE_CONSTRAINT",
				Message: err.Error(),
				Details: map[string]interface{}{"field": nnErr.Field, "value": nnErr.Value},
			},
		})
	case errors.As(err, &batchErr):
		names := make([]string, len(batchErr.Failures))
		for i, f := range batchErr.Failures {
			names[i] = f.Name
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIOS",
				Message: err.Error(),
				Details: map[string]interface{}{"scenarios": names},
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPUTE_ERROR",
				Message: err.Error(),
			},
		})
	}
}
