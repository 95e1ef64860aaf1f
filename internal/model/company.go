// Package model defines the canonical records of the risk dashboard.
package model

// Company is one row of the company dataset.
type Company struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Industry    string   `json:"industry" yaml:"industry"`
	HazardIndex float64  `json:"ehei" yaml:"ehei"` // hazard exposure index in [0,1]
	IsHighRisk  bool     `json:"is_high_risk" yaml:"is_high_risk"`
	RegionCode  string   `json:"geo,omitempty" yaml:"geo,omitempty"`
	Lat         *float64 `json:"lat,omitempty" yaml:"lat,omitempty"` // nil when the latitude cell is absent or blank
	Lon         *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// HasCoordinates reports whether both coordinates were supplied.
func (c Company) HasCoordinates() bool {
	return c.Lat != nil && c.Lon != nil
}

// Placement describes how a map point's position was obtained.
type Placement string

const (
	PlacementExact    Placement = "exact"
	PlacementCentroid Placement = "centroid"
)

// MapPoint is a company positioned for the map widget.
type MapPoint struct {
	Company   Company   `json:"company" yaml:"company"`
	Lat       float64   `json:"lat" yaml:"lat"`
	Lon       float64   `json:"lon" yaml:"lon"`
	Placement Placement `json:"placement" yaml:"placement"`
	Size      float64   `json:"size" yaml:"size"`
	ColorKey  string    `json:"color_key" yaml:"color_key"`
	Label     string    `json:"label" yaml:"label"`
}
