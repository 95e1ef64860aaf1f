package main

import (
	"github.com/sells-group/risk-dashboard/internal/config"
	"github.com/sells-group/risk-dashboard/internal/dashboard"
	"github.com/sells-group/risk-dashboard/internal/sample"
)

// newState builds the dashboard state over the built-in sample dataset.
func newState(c config.DashboardConfig) *dashboard.State {
	d := sample.Dataset()
	state := dashboard.NewState(d, dashboard.NewEngine(d.Portfolio, dashboard.WithTopN(c.TopN)))
	if c.DefaultIndustry != "" {
		state.SetFilter(c.DefaultIndustry)
	}
	return state
}
