package domain

// Sentinel thresholds for unknown coordinates in FARS accident files. Real
// positions never exceed them; see the package documentation.
const (
	MaxLatitude  = 90.0
	MaxLongitude = 900.0
)

// Canonical unknown-coordinate sentinels, used when a coordinate field is
// empty or unparseable.
const (
	UnknownLatitude  = 99.9999
	UnknownLongitude = 999.9999
)

// Accident is one row of a FARS annual accident file. Fields beyond this set
// exist in the raw data but play no part in reporting and are dropped at
// parse time.
type Accident struct {
	State    int     // STATE: GSA state code
	StCase   int     // ST_CASE: case number, unique within state and year
	County   int     // COUNTY
	Month    int     // MONTH: 1-12 in well-formed data
	Day      int     // DAY
	Year     int     // YEAR as written in the file
	Latitude float64 // LATITUDE: values above 90 are unknown-position sentinels
	Longitud float64 // LONGITUD: values above 900 are unknown-position sentinels
	Fatals   int     // FATALS: fatality count
}

// LocationKnown reports whether both coordinates are inside physical range.
// FARS encodes unknown positions in-band with sentinel values beyond it.
func (a Accident) LocationKnown() bool {
	return a.Latitude <= MaxLatitude && a.Longitud <= MaxLongitude
}

// YearAccidents pairs a requested year with the records loaded for it. The
// year is the requested one, which wins over the YEAR column when the two
// disagree.
type YearAccidents struct {
	Year      int
	Accidents []Accident
}

// Point is a plottable coordinate pair.
type Point struct {
	Lon float64
	Lat float64
}
