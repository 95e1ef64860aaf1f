package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/risk-dashboard/internal/geo"
	"github.com/sells-group/risk-dashboard/internal/model"
)

func TestDataset_Loaded(t *testing.T) {
	d := Dataset()
	assert.Len(t, d.Companies, 16)
	assert.Len(t, d.Portfolio, 8)
	assert.Len(t, d.Features, 10)

	assert.Equal(t, "Northwind Petroleum", d.Companies[0].Name)
	assert.Equal(t, "C001", d.Companies[0].ID)
	assert.Equal(t, 0.91, d.Companies[0].HazardIndex)
	assert.True(t, d.Companies[0].IsHighRisk)
}

func TestDataset_ReturnsCopy(t *testing.T) {
	a := Dataset()
	a.Companies[0].Name = "changed"
	a.Features = nil

	b := Dataset()
	assert.Equal(t, "Northwind Petroleum", b.Companies[0].Name)
	assert.Len(t, b.Features, 10)
}

func TestDataset_CoversEveryPlacement(t *testing.T) {
	placements := map[model.Placement]int{}
	excluded := 0
	for _, c := range Dataset().Companies {
		p, ok := geo.Resolve(c)
		if !ok {
			excluded++
			continue
		}
		placements[p.Placement]++
	}
	assert.Positive(t, placements[model.PlacementExact])
	assert.Positive(t, placements[model.PlacementCentroid])
	require.Equal(t, 1, excluded)
}
