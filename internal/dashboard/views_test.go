package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/risk-dashboard/internal/geo"
	"github.com/sells-group/risk-dashboard/internal/model"
)

func co(name, industry string, hazard float64, high bool) model.Company {
	return model.Company{ID: name, Name: name, Industry: industry, HazardIndex: hazard, IsHighRisk: high}
}

func TestFilter(t *testing.T) {
	companies := []model.Company{
		co("a", "Energy", 0.5, true),
		co("b", "Utilities", 0.3, false),
		co("c", "Energy", 0.9, true),
		co("d", "energy", 0.1, false),
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{AllIndustries, []string{"a", "b", "c", "d"}},
		{"", []string{"a", "b", "c", "d"}},
		{"Energy", []string{"a", "c"}},
		{"Mining", nil},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			var names []string
			for _, c := range Filter(companies, tt.filter) {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSummarize(t *testing.T) {
	kpi := Summarize([]model.Company{
		co("a", "x", 0.333, true),
		co("b", "x", 0.5, false),
		co("c", "x", 0.9, true),
	})
	assert.Equal(t, 3, kpi.Count)
	assert.Equal(t, 66.7, kpi.HighRiskPct)
	assert.Equal(t, 0.58, kpi.AvgHazardIndex)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, KPI{}, Summarize(nil))
	assert.Equal(t, KPI{}, Summarize([]model.Company{}))
}

func TestTopN_ElevenRows(t *testing.T) {
	var subset []model.Company
	for i := 0; i < 11; i++ {
		subset = append(subset, co(fmt.Sprintf("c%02d", i), "x", float64(i)/10, false))
	}

	top := TopN(subset, DefaultTopN)
	require.Len(t, top, 10)
	for i, c := range top {
		assert.Equal(t, fmt.Sprintf("c%02d", 10-i), c.Name)
	}
	assert.Equal(t, "c00", subset[0].Name, "input order untouched")
}

func TestTopN_StableTies(t *testing.T) {
	subset := []model.Company{
		co("first", "x", 0.5, false),
		co("high", "x", 0.9, false),
		co("second", "x", 0.5, false),
		co("third", "x", 0.5, false),
	}
	top := TopN(subset, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "high", top[0].Name)
	assert.Equal(t, "first", top[1].Name)
	assert.Equal(t, "second", top[2].Name)
}

func TestTopN_ShortInput(t *testing.T) {
	assert.Empty(t, TopN(nil, 10))
	assert.Len(t, TopN([]model.Company{co("a", "x", 0, false)}, 10), 1)
}

func TestMapPoints_ExcludesUnresolvable(t *testing.T) {
	lat, lon := 1.0, 2.0
	subset := []model.Company{
		{Name: "exact", Lat: &lat, Lon: &lon, RegionCode: "QQ"},
		{Name: "centroid", RegionCode: "FR"},
		{Name: "unknown", RegionCode: "QQ"},
	}
	points := MapPoints(geo.DefaultResolver, subset)
	require.Len(t, points, 2)
	assert.Equal(t, model.PlacementExact, points[0].Placement)
	assert.Equal(t, model.PlacementCentroid, points[1].Placement)
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(
		[]string{"Energy", "Utilities", "Energy"},
		[]model.Company{co("a", "Mining", 0, false), co("b", "Energy", 0, false), co("c", "", 0, false), co("d", "All", 0, false)},
	)
	assert.Equal(t, []string{AllIndustries, "Energy", "Utilities", "Mining"}, opts)
}

func TestIndustryBars(t *testing.T) {
	bars := IndustryBars([]model.PortfolioAggregate{
		{Industry: "Energy", HighRiskFraction: 0.524},
		{Industry: "Financials", HighRiskFraction: 0.05},
	})
	assert.Equal(t, []IndustryBar{{"Energy", 52.4}, {"Financials", 5}}, bars)
}

func TestRankFeatures(t *testing.T) {
	in := []model.FeatureImportance{{Name: "a", Importance: 0.1}, {Name: "b", Importance: 0.4}, {Name: "c", Importance: 0.1}, {Name: "d", Importance: 2}}
	got := RankFeatures(in)
	assert.Equal(t, []model.FeatureImportance{{Name: "d", Importance: 2}, {Name: "b", Importance: 0.4}, {Name: "a", Importance: 0.1}, {Name: "c", Importance: 0.1}}, got)
	assert.Equal(t, "a", in[0].Name)
}

func TestEngine_Compute(t *testing.T) {
	d := model.Dataset{
		Companies: []model.Company{
			{Name: "a", Industry: "Energy", HazardIndex: 0.8, IsHighRisk: true, RegionCode: "DE"},
			{Name: "b", Industry: "Retail", HazardIndex: 0.2, RegionCode: "QQ"},
		},
		Portfolio: []model.PortfolioAggregate{{Industry: "Energy", HighRiskFraction: 0.5}},
		Features:  []model.FeatureImportance{{Name: "x", Importance: 0.1}, {Name: "y", Importance: 0.3}},
	}
	e := NewEngine([]model.PortfolioAggregate{{Industry: "Utilities"}}, WithTopN(1))

	v := e.Compute(d, "")
	assert.Equal(t, AllIndustries, v.Filter)
	assert.Equal(t, KPI{Count: 2, HighRiskPct: 50, AvgHazardIndex: 0.5}, v.KPI)
	require.Len(t, v.Top, 1)
	assert.Equal(t, "a", v.Top[0].Name)
	require.Len(t, v.MapPoints, 1)
	assert.Equal(t, []string{AllIndustries, "Utilities", "Energy", "Retail"}, v.FilterOptions)
	assert.Equal(t, []IndustryBar{{"Energy", 50}}, v.IndustryBars)
	assert.Equal(t, "y", v.Features[0].Name)

	assert.Equal(t, v, e.Compute(d, AllIndustries), "recomputation is idempotent")

	retail := e.Compute(d, "Retail")
	assert.Equal(t, 1, retail.KPI.Count)
	assert.Empty(t, retail.MapPoints)
	assert.Equal(t, v.FilterOptions, retail.FilterOptions)

	none := e.Compute(d, "Nope")
	assert.Equal(t, KPI{}, none.KPI)
	assert.Empty(t, none.Top)
}

func TestEngine_CustomResolver(t *testing.T) {
	e := NewEngine(nil, WithResolver(geo.NewResolver(map[string]geo.LatLon{"QQ": {Lat: 1, Lon: 1}})), WithTopN(0))
	v := e.Compute(model.Dataset{Companies: []model.Company{{Name: "a", RegionCode: "QQ"}}}, "")
	require.Len(t, v.MapPoints, 1)
	assert.Equal(t, model.PlacementCentroid, v.MapPoints[0].Placement)
	assert.Equal(t, DefaultTopN, e.topN)
}
