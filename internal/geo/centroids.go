// Package geo places companies on the map, by explicit coordinates or by the
// centroid of their region.
package geo

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// centroids maps ISO-2-like region codes to a representative country coordinate.
// Legacy and alternate codes are listed as separate keys pointing at the same place.
var centroids = map[string]LatLon{
	"AE": {23.42, 53.85},
	"AR": {-38.42, -63.62},
	"AT": {47.52, 14.55},
	"AU": {-25.27, 133.78},
	"BD": {23.68, 90.36},
	"BE": {50.50, 4.47},
	"BG": {42.73, 25.49},
	"BR": {-14.24, -51.93},
	"CA": {56.13, -106.35},
	"CD": {-4.04, 21.76},
	"CH": {46.82, 8.23},
	"CL": {-35.68, -71.54},
	"CN": {35.86, 104.20},
	"CO": {4.57, -74.30},
	"CW": {12.17, -68.99},
	"CZ": {49.82, 15.47},
	"DE": {51.17, 10.45},
	"DK": {56.26, 9.50},
	"DZ": {28.03, 1.66},
	"EE": {58.60, 25.01},
	"EG": {26.82, 30.80},
	"ES": {40.46, -3.75},
	"FI": {61.92, 25.75},
	"FR": {46.23, 2.21},
	"GB": {55.38, -3.44},
	"GH": {7.95, -1.02},
	"GR": {39.07, 21.82},
	"HK": {22.40, 114.11},
	"HR": {45.10, 15.20},
	"HU": {47.16, 19.50},
	"ID": {-0.79, 113.92},
	"IE": {53.41, -8.24},
	"IL": {31.05, 34.85},
	"IN": {20.59, 78.96},
	"IT": {41.87, 12.57},
	"JP": {36.20, 138.25},
	"KE": {-0.02, 37.91},
	"KR": {35.91, 127.77},
	"KZ": {48.02, 66.92},
	"LT": {55.17, 23.88},
	"LU": {49.82, 6.13},
	"LV": {56.88, 24.60},
	"MA": {31.79, -7.09},
	"MM": {21.91, 95.96},
	"MX": {23.63, -102.55},
	"MY": {4.21, 101.98},
	"NG": {9.08, 8.68},
	"NL": {52.13, 5.29},
	"NO": {60.47, 8.47},
	"NZ": {-40.90, 174.89},
	"PE": {-9.19, -75.02},
	"PH": {12.88, 121.77},
	"PK": {30.38, 69.35},
	"PL": {51.92, 19.15},
	"PT": {39.40, -8.22},
	"QA": {25.35, 51.18},
	"RO": {45.94, 24.97},
	"RS": {44.02, 21.01},
	"RU": {61.52, 105.32},
	"SA": {23.89, 45.08},
	"SE": {60.13, 18.64},
	"SG": {1.35, 103.82},
	"SI": {46.15, 14.99},
	"SK": {48.67, 19.70},
	"TH": {15.87, 100.99},
	"TL": {-8.87, 125.73},
	"TR": {38.96, 35.24},
	"TW": {23.70, 120.96},
	"UA": {48.38, 31.17},
	"US": {37.09, -95.71},
	"VN": {14.06, 108.28},
	"ZA": {-30.56, 22.94},

	// Legacy and alternate codes.
	"UK": {55.38, -3.44},   // GB
	"EL": {39.07, 21.82},   // GR, EU usage
	"ZR": {-4.04, 21.76},   // CD, Zaire
	"BU": {21.91, 95.96},   // MM, Burma
	"TP": {-8.87, 125.73},  // TL, East Timor
	"YU": {44.02, 21.01},   // RS, Yugoslavia
	"AN": {12.17, -68.99},  // CW, Netherlands Antilles
}

// Lookup returns the centroid for code. Matching is exact and case-sensitive.
func Lookup(code string) (LatLon, bool) {
	ll, ok := centroids[code]
	return ll, ok
}

// Codes returns the number of region codes in the built-in table.
func Codes() int { return len(centroids) }
