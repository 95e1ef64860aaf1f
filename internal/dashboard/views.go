// Package dashboard owns the in-memory dataset and recomputes every derived view
// from it: the filtered subset, KPIs, the top-N table, map points and filter options.
package dashboard

import (
	"math"
	"sort"

	"github.com/sells-group/risk-dashboard/internal/geo"
	"github.com/sells-group/risk-dashboard/internal/model"
)

// AllIndustries is the filter sentinel that selects every company.
const AllIndustries = "All"

// DefaultTopN is the length of the ranked company table.
const DefaultTopN = 10

// KPI is the summary row shown above the charts.
type KPI struct {
	Count          int     `json:"count" yaml:"count"`
	HighRiskPct    float64 `json:"pct_high_risk" yaml:"pct_high_risk"` // 1 decimal
	AvgHazardIndex float64 `json:"avg_ehei" yaml:"avg_ehei"`           // 2 decimals
}

// IndustryBar is one bar of the per-industry high-risk chart.
type IndustryBar struct {
	Industry string  `json:"industry" yaml:"industry"`
	CountPct float64 `json:"count_pct" yaml:"count_pct"`
}

// Filter returns the companies in industry. The empty string and AllIndustries
// select everything. Matching is exact.
func Filter(companies []model.Company, industry string) []model.Company {
	out := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		if isAll(industry) || c.Industry == industry {
			out = append(out, c)
		}
	}
	return out
}

// Summarize computes the KPI row. An empty subset yields all zeros.
func Summarize(subset []model.Company) KPI {
	if len(subset) == 0 {
		return KPI{}
	}
	var high int
	var sum float64
	for _, c := range subset {
		if c.IsHighRisk {
			high++
		}
		sum += c.HazardIndex
	}
	n := float64(len(subset))
	return KPI{
		Count:          len(subset),
		HighRiskPct:    round(float64(high)/n*100, 1),
		AvgHazardIndex: round(sum/n, 2),
	}
}

// TopN returns the n companies with the highest hazard index, highest first.
// Equal hazard indexes keep their input order. The input is not modified.
func TopN(subset []model.Company, n int) []model.Company {
	ranked := append([]model.Company(nil), subset...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HazardIndex > ranked[j].HazardIndex
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MapPoints resolves the subset onto the map, dropping companies that cannot be placed.
func MapPoints(r *geo.Resolver, subset []model.Company) []model.MapPoint {
	return r.ResolveAll(subset)
}

// FilterOptions lists AllIndustries followed by the distinct industries of base
// and then of companies, in first-seen order.
func FilterOptions(base []string, companies []model.Company) []string {
	seen := map[string]bool{AllIndustries: true}
	opts := []string{AllIndustries}
	add := func(industry string) {
		if industry == "" || seen[industry] {
			return
		}
		seen[industry] = true
		opts = append(opts, industry)
	}
	for _, industry := range base {
		add(industry)
	}
	for _, c := range companies {
		add(c.Industry)
	}
	return opts
}

// IndustryBars converts portfolio rows into chart bars, expressing the
// high-risk fraction as a percentage.
func IndustryBars(portfolio []model.PortfolioAggregate) []IndustryBar {
	bars := make([]IndustryBar, 0, len(portfolio))
	for _, p := range portfolio {
		bars = append(bars, IndustryBar{
			Industry: p.Industry,
			CountPct: round(p.HighRiskFraction*100, 1),
		})
	}
	return bars
}

// RankFeatures orders features by importance, highest first, keeping input
// order on ties. The input is not modified.
func RankFeatures(features []model.FeatureImportance) []model.FeatureImportance {
	ranked := append([]model.FeatureImportance(nil), features...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})
	return ranked
}

func isAll(industry string) bool {
	return industry == "" || industry == AllIndustries
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
