package indicator

import (
	"fmt"
	"math"
)

// Record is one observation of an indicator for a given year, as found
// in a row of the data hub workbook.
type Record struct {
	Year       int     `json:"Year"`
	Indicator  string  `json:"Indicator"`
	Value      float64 `json:"Indicator Value"`
	Unit       string  `json:"Indicator Unit,omitempty"`
	SeriesName string  `json:"Series Name,omitempty"`
	Sector     string  `json:"Sector,omitempty"`
	SubSector1 string  `json:"Sub-Sector (1),omitempty"`
	SubSector2 string  `json:"Sub-Sector (2),omitempty"`
	Province   string  `json:"Province,omitempty"`
	Tag        string  `json:"Tag,omitempty"`
}

func (r *Record) String() string {
	return fmt.Sprintf("(%d, %q, %g)", r.Year, r.Indicator, r.Value)
}

// Key identifies the observation a record talks about. Two records with
// the same key describe the same thing, so the newest one should win.
type Key struct {
	SeriesName string
	Indicator  string
	Province   string
	Year       int
}

func (r *Record) Key() Key {
	return Key{
		SeriesName: r.SeriesName,
		Indicator:  r.Indicator,
		Province:   r.Province,
		Year:       r.Year,
	}
}

func (r *Record) Equal(o *Record) bool {
	if r.Key() != o.Key() {
		return false
	}

	if r.Value != o.Value && !(math.IsNaN(r.Value) && math.IsNaN(o.Value)) {
		return false
	}

	return r.Unit == o.Unit &&
		r.Sector == o.Sector &&
		r.SubSector1 == o.SubSector1 &&
		r.SubSector2 == o.SubSector2 &&
		r.Tag == o.Tag
}

// Values returns the indicator values of the records, in order.
func Values(rr []Record) []float64 {
	result := make([]float64, len(rr))
	for i, r := range rr {
		result[i] = r.Value
	}

	return result
}

// Indicators returns the distinct indicator names in the records, in
// the order they are first seen.
func Indicators(rr []Record) []string {
	seen := map[string]bool{}
	result := []string{}

	for _, r := range rr {
		if seen[r.Indicator] {
			continue
		}
		seen[r.Indicator] = true
		result = append(result, r.Indicator)
	}

	return result
}
