package model

// PortfolioAggregate is one industry row of the portfolio summary.
type PortfolioAggregate struct {
	Industry         string  `json:"industry" yaml:"industry"`
	CompanyCount     int     `json:"companies" yaml:"companies"`
	AvgHazardIndex   float64 `json:"avg_ehei" yaml:"avg_ehei"`
	HighRiskFraction float64 `json:"pct_high_risk" yaml:"pct_high_risk"`
}

// FeatureImportance is a model feature and its displayed weight.
// Importances are not required to sum to 1.
type FeatureImportance struct {
	Name       string  `json:"name" yaml:"name"`
	Importance float64 `json:"importance" yaml:"importance"`
}

// Kind identifies which collection an upload replaces.
type Kind string

const (
	KindPortfolio Kind = "portfolio"
	KindFeatures  Kind = "features"
	KindCompanies Kind = "companies"
)

// Kinds lists every upload kind.
var Kinds = []Kind{KindPortfolio, KindFeatures, KindCompanies}

// ParseKind validates an upload kind name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Dataset is the full set of collections owned by the dashboard state.
type Dataset struct {
	Companies []Company            `json:"companies" yaml:"companies"`
	Portfolio []PortfolioAggregate `json:"portfolio" yaml:"portfolio"`
	Features  []FeatureImportance  `json:"features" yaml:"features"`
}

// Clone returns a copy whose slices can be modified independently.
// Coordinate pointers are shared; companies are never mutated in place.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Companies: append([]Company(nil), d.Companies...),
		Portfolio: append([]PortfolioAggregate(nil), d.Portfolio...),
		Features:  append([]FeatureImportance(nil), d.Features...),
	}
}
