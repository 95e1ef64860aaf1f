package geo

import (
	"fmt"
	"math"

	"github.com/sells-group/risk-dashboard/internal/model"
)

// Marker styling bounds, in pixels.
const (
	minMarkerSize = 4.0
	maxMarkerSize = 20.0
)

// Hazard thresholds for the marker color key.
const (
	highHazard   = 0.66
	mediumHazard = 0.33
)

// Color keys used by the map widget legend.
const (
	ColorHigh   = "high"
	ColorMedium = "medium"
	ColorLow    = "low"
)

// Resolver turns companies into map points.
type Resolver struct {
	lookup func(code string) (LatLon, bool)
}

// NewResolver creates a Resolver backed by table. A nil table uses the built-in centroids.
func NewResolver(table map[string]LatLon) *Resolver {
	if table == nil {
		return &Resolver{lookup: Lookup}
	}
	return &Resolver{lookup: func(code string) (LatLon, bool) {
		ll, ok := table[code]
		return ll, ok
	}}
}

// DefaultResolver resolves against the built-in centroid table.
var DefaultResolver = NewResolver(nil)

// Resolve places c on the map. Explicit finite coordinates always win; otherwise
// the region centroid is used. Companies with neither are not placed.
func (r *Resolver) Resolve(c model.Company) (model.MapPoint, bool) {
	if c.HasCoordinates() && finite(*c.Lat) && finite(*c.Lon) {
		return newPoint(c, *c.Lat, *c.Lon, model.PlacementExact), true
	}
	if c.RegionCode != "" {
		if ll, ok := r.lookup(c.RegionCode); ok {
			return newPoint(c, ll.Lat, ll.Lon, model.PlacementCentroid), true
		}
	}
	return model.MapPoint{}, false
}

// ResolveAll resolves each company in order, skipping the ones that cannot be placed.
func (r *Resolver) ResolveAll(companies []model.Company) []model.MapPoint {
	points := make([]model.MapPoint, 0, len(companies))
	for _, c := range companies {
		if p, ok := r.Resolve(c); ok {
			points = append(points, p)
		}
	}
	return points
}

// Resolve uses DefaultResolver.
func Resolve(c model.Company) (model.MapPoint, bool) {
	return DefaultResolver.Resolve(c)
}

func newPoint(c model.Company, lat, lon float64, placement model.Placement) model.MapPoint {
	return model.MapPoint{
		Company:   c,
		Lat:       lat,
		Lon:       lon,
		Placement: placement,
		Size:      MarkerSize(c.HazardIndex),
		ColorKey:  ColorKey(c.HazardIndex),
		Label:     label(c, placement),
	}
}

// MarkerSize scales a marker radius with the hazard index.
func MarkerSize(hazard float64) float64 {
	size := minMarkerSize + (maxMarkerSize-minMarkerSize)*hazard
	return math.Max(minMarkerSize, math.Min(maxMarkerSize, size))
}

// ColorKey buckets a hazard index for the map legend.
func ColorKey(hazard float64) string {
	switch {
	case hazard >= highHazard:
		return ColorHigh
	case hazard >= mediumHazard:
		return ColorMedium
	default:
		return ColorLow
	}
}

func label(c model.Company, placement model.Placement) string {
	s := fmt.Sprintf("%s (%s) EHEI %.2f", c.Name, c.Industry, c.HazardIndex)
	if placement == model.PlacementCentroid {
		s += " [centroid]"
	}
	return s
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
