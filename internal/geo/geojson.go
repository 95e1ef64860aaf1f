package geo

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/risk-dashboard/internal/model"
)

// Bounds returns the extent of points, or nil when there are none.
func Bounds(points []model.MapPoint) *geom.Bounds {
	if len(points) == 0 {
		return nil
	}
	b := geom.NewBounds(geom.XY)
	for _, p := range points {
		b.Extend(point(p))
	}
	return b
}

// FeatureCollection converts map points into GeoJSON point features.
// Coordinates are written in GeoJSON order, [lon, lat].
func FeatureCollection(points []model.MapPoint) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		BBox:     Bounds(points),
		Features: make([]*geojson.Feature, 0, len(points)),
	}
	for _, p := range points {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       p.Company.ID,
			Geometry: point(p),
			Properties: map[string]any{
				"name":         p.Company.Name,
				"industry":     p.Company.Industry,
				"ehei":         p.Company.HazardIndex,
				"is_high_risk": p.Company.IsHighRisk,
				"geo":          p.Company.RegionCode,
				"placement":    string(p.Placement),
				"size":         p.Size,
				"color_key":    p.ColorKey,
				"label":        p.Label,
			},
		})
	}
	return fc
}

// MarshalGeoJSON encodes points as a GeoJSON FeatureCollection document.
func MarshalGeoJSON(points []model.MapPoint) ([]byte, error) {
	data, err := json.Marshal(FeatureCollection(points))
	if err != nil {
		return nil, eris.Wrap(err, "geo: marshal geojson")
	}
	return data, nil
}

func point(p model.MapPoint) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat}).SetSRID(4326)
}
