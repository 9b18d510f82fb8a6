// Package report renders comparison reports for the console and for file
// export. Rendering only formats figures already present on the report;
// all rounding happens here and nowhere upstream.
package report

import (
	"fmt"
	"strings"
	"time"

	"powergas-profit/internal/compare"
	"powergas-profit/internal/model"
)

var componentTitles = map[model.CostComponent]string{
	model.ComponentProduction:   "Production Costs",
	model.ComponentTruckExpense: "Truck Expenses",
	model.ComponentTrucking:     "Trucking Costs",
	model.ComponentSkid:         "Skid Costs",
}

const rule = 80

// RenderComparison produces the plain-text comparison report: ranked
// summary, per-scenario breakdown and the comparative analysis naming the
// dominant cost driver.
func RenderComparison(rep *compare.Report, now time.Time) string {
	var b strings.Builder

	line := strings.Repeat("=", rule)
	thin := strings.Repeat("-", rule)

	fmt.Fprintf(&b, "\n%s\n", line)
	fmt.Fprintf(&b, "POWERGAS PROFITABILITY COMPARISON REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n\n", line)

	fmt.Fprintf(&b, "SUMMARY (Ranked by Profit)\n%s\n", thin)
	fmt.Fprintf(&b, "%-6s%-25s%-18s%-12s%s\n", "Rank", "Scenario", "Profit (NGN)", "Margin %", "Route")
	fmt.Fprintf(&b, "%s\n", thin)
	for i, r := range rep.Ranked {
		route := fmt.Sprintf("%s -> %s", r.Result.MotherStation, r.Result.DaughterStation)
		fmt.Fprintf(&b, "%-6d%-25s%15.2f   %9s   %s\n",
			i+1, r.Entry.Name, r.Result.Profit, marginStr(r.Result.Margin), route)
	}

	fmt.Fprintf(&b, "\n%s\nDETAILED BREAKDOWN\n%s\n", line, line)
	for i, r := range rep.Ranked {
		res := r.Result
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, r.Entry.Name)
		if r.Entry.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", r.Entry.Description)
		}
		fmt.Fprintf(&b, "   Route: %s -> %s\n", res.MotherStation, res.DaughterStation)
		fmt.Fprintf(&b, "   %s\n", thin[:76])
		fmt.Fprintf(&b, "   Revenue:                    NGN %15.2f\n", res.Revenue)
		fmt.Fprintf(&b, "   Costs:\n")
		fmt.Fprintf(&b, "     - Production Costs:       NGN %15.2f\n", res.ProductionCost)
		fmt.Fprintf(&b, "     - Truck Expenses:         NGN %15.2f\n", res.TruckExpense)
		fmt.Fprintf(&b, "     - Trucking Costs:         NGN %15.2f\n", res.TruckingCost)
		fmt.Fprintf(&b, "     - Skid Costs:             NGN %15.2f\n", res.SkidCost)
		fmt.Fprintf(&b, "   Total Costs:                NGN %15.2f\n", res.TotalCost)
		fmt.Fprintf(&b, "   PROFIT:                     NGN %15.2f\n", res.Profit)
		fmt.Fprintf(&b, "   Profit Margin:              %15s\n", marginStr(res.Margin))
	}

	if len(rep.Ranked) > 1 {
		fmt.Fprintf(&b, "\n%s\nCOMPARATIVE ANALYSIS\n%s\n\n", line, line)
		fmt.Fprintf(&b, "Best Scenario:  %s\n", rep.Best.Entry.Name)
		fmt.Fprintf(&b, "Worst Scenario: %s\n\n", rep.Worst.Entry.Name)
		fmt.Fprintf(&b, "Profit Difference:       NGN %15.2f\n", rep.ProfitDiff)
		if rep.MarginDiff.Defined {
			fmt.Fprintf(&b, "Margin Difference:       %15.2f percentage points\n", rep.MarginDiff.Pct)
		} else {
			fmt.Fprintf(&b, "Margin Difference:       n/a (zero-revenue scenario in set)\n")
		}

		fmt.Fprintf(&b, "\nCost Component Impact Analysis:\n%s\n", thin)
		for _, cr := range rep.Ranges {
			fmt.Fprintf(&b, "%-28s spread NGN %15.2f  (min %.2f, max %.2f)\n",
				componentTitles[cr.Component]+":", cr.Range, cr.Min, cr.Max)
		}
		fmt.Fprintf(&b, "\nBiggest Cost Impact: %s\n", componentTitles[rep.DominantComponent])
	}

	if len(rep.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped Scenarios:\n")
		for _, s := range rep.Skipped {
			fmt.Fprintf(&b, "  - %s: %s\n", s.Name, s.Reason)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", line)
	return b.String()
}

// RenderTrip produces the short single-trip summary used by the CLI.
func RenderTrip(res model.ProfitabilityResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip ID: %s\n", res.TripID)
	fmt.Fprintf(&b, "Route: %s -> %s\n", res.MotherStation, res.DaughterStation)
	fmt.Fprintf(&b, "Revenue: NGN %.2f\n", res.Revenue)
	fmt.Fprintf(&b, "Total Costs: NGN %.2f\n", res.TotalCost)
	fmt.Fprintf(&b, "Profit: NGN %.2f\n", res.Profit)
	fmt.Fprintf(&b, "Profit Margin: %s\n", marginStr(res.Margin))
	return b.String()
}

func marginStr(m model.Margin) string {
	if !m.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", m.Pct)
}
