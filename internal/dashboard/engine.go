package dashboard

import (
	"github.com/sells-group/risk-dashboard/internal/geo"
	"github.com/sells-group/risk-dashboard/internal/model"
)

// View is every derived output for one dataset and filter.
type View struct {
	Filter        string                    `json:"filter" yaml:"filter"`
	KPI           KPI                       `json:"kpi" yaml:"kpi"`
	Top           []model.Company           `json:"top" yaml:"top"`
	MapPoints     []model.MapPoint          `json:"map_points" yaml:"map_points"`
	FilterOptions []string                  `json:"filter_options" yaml:"filter_options"`
	IndustryBars  []IndustryBar             `json:"industry_bars" yaml:"industry_bars"`
	Features      []model.FeatureImportance `json:"features" yaml:"features"`
}

// Engine recomputes views. It holds no dataset and is safe for concurrent use.
type Engine struct {
	resolver       *geo.Resolver
	topN           int
	baseIndustries []string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithResolver replaces the built-in centroid resolver.
func WithResolver(r *geo.Resolver) EngineOption {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithTopN sets the ranked table length. Non-positive values keep the default.
func WithTopN(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// NewEngine creates an Engine whose filter options always include the
// industries of base, the built-in portfolio sample.
func NewEngine(base []model.PortfolioAggregate, opts ...EngineOption) *Engine {
	e := &Engine{
		resolver: geo.DefaultResolver,
		topN:     DefaultTopN,
	}
	for _, p := range base {
		e.baseIndustries = append(e.baseIndustries, p.Industry)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute derives every view of d under filter.
func (e *Engine) Compute(d model.Dataset, filter string) View {
	if filter == "" {
		filter = AllIndustries
	}
	subset := Filter(d.Companies, filter)
	return View{
		Filter:        filter,
		KPI:           Summarize(subset),
		Top:           TopN(subset, e.topN),
		MapPoints:     MapPoints(e.resolver, subset),
		FilterOptions: FilterOptions(e.baseIndustries, d.Companies),
		IndustryBars:  IndustryBars(d.Portfolio),
		Features:      RankFeatures(d.Features),
	}
}
