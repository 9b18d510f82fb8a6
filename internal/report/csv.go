package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"powergas-profit/internal/compare"
)

// WriteRankedCSV exports the ranked comparison table, one row per scenario
// in rank order. Every figure comes straight off the report; nothing is
// recomputed here.
func WriteRankedCSV(path string, rep *compare.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"rank",
		"scenario",
		"trip_id",
		"mother_station",
		"daughter_station",
		"revenue",
		"production_costs",
		"truck_expenses",
		"trucking_costs",
		"skid_costs",
		"total_costs",
		"profit",
		"margin_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range rep.Ranked {
		res := r.Result
		marginStr := ""
		if res.Margin.Defined {
			marginStr = fmtFloat(res.Margin.Pct)
		}
		row := []string{
			strconv.Itoa(i + 1),
			r.Entry.Name,
			res.TripID,
			res.MotherStation,
			res.DaughterStation,
			fmtFloat(res.Revenue),
			fmtFloat(res.ProductionCost),
			fmtFloat(res.TruckExpense),
			fmtFloat(res.TruckingCost),
			fmtFloat(res.SkidCost),
			fmtFloat(res.TotalCost),
			fmtFloat(res.Profit),
			marginStr,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
