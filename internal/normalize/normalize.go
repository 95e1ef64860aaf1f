// Package normalize maps loosely typed parsed rows onto canonical records.
//
// Every function is total: unparseable numbers become 0 and rows missing the
// required key for their kind are dropped rather than reported as errors.
package normalize

import (
	"github.com/sells-group/risk-dashboard/internal/model"
	"github.com/sells-group/risk-dashboard/internal/tabular"
)

// Header aliases, in priority order.
var (
	portfolioIndustryKeys = []string{"industry"}
	portfolioCountKeys    = []string{"companies", "company_count"}
	portfolioHazardKeys   = []string{"avg_EHEI", "avg_ehei"}
	portfolioHighKeys     = []string{"pct_high_risk", "pct_high"}

	featureNameKeys       = []string{"feature"}
	featureImportanceKeys = []string{"importance"}

	companyIDKeys       = []string{"id", "company_id"}
	companyNameKeys     = []string{"company"}
	companyIndustryKeys = []string{"industry"}
	companyHazardKeys   = []string{"EHEI", "ehei"}
	companyHighKeys     = []string{"is_high_risk", "high"}
	companyRegionKeys   = []string{"geo", "region"}
	companyLatKeys      = []string{"lat", "latitude"}
	companyLonKeys      = []string{"lon", "longitude"}
)

// Portfolio normalizes per-industry aggregate rows. Rows without an industry are dropped.
func Portfolio(rows []tabular.Row) []model.PortfolioAggregate {
	out := make([]model.PortfolioAggregate, 0, len(rows))
	for _, row := range rows {
		industry := text(row, portfolioIndustryKeys...)
		if industry == "" {
			continue
		}
		out = append(out, model.PortfolioAggregate{
			Industry:         industry,
			CompanyCount:     Int(text(row, portfolioCountKeys...)),
			AvgHazardIndex:   Float(text(row, portfolioHazardKeys...)),
			HighRiskFraction: Float(text(row, portfolioHighKeys...)),
		})
	}
	return out
}

// Features normalizes feature-importance rows. Rows without a feature name are dropped.
func Features(rows []tabular.Row) []model.FeatureImportance {
	out := make([]model.FeatureImportance, 0, len(rows))
	for _, row := range rows {
		name := text(row, featureNameKeys...)
		if name == "" {
			continue
		}
		out = append(out, model.FeatureImportance{
			Name:       name,
			Importance: Float(text(row, featureImportanceKeys...)),
		})
	}
	return out
}

// Companies normalizes company rows. Rows without a company name are dropped.
func Companies(rows []tabular.Row) []model.Company {
	out := make([]model.Company, 0, len(rows))
	for _, row := range rows {
		name := text(row, companyNameKeys...)
		if name == "" {
			continue
		}
		out = append(out, model.Company{
			ID:          text(row, companyIDKeys...),
			Name:        name,
			Industry:    text(row, companyIndustryKeys...),
			HazardIndex: Float(text(row, companyHazardKeys...)),
			IsHighRisk:  Bool(text(row, companyHighKeys...)),
			RegionCode:  text(row, companyRegionKeys...),
			Lat:         Coordinate(row, companyLatKeys...),
			Lon:         Coordinate(row, companyLonKeys...),
		})
	}
	return out
}
