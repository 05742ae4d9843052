package indicator

// AllProvinces is the province filter value that matches every province.
const AllProvinces = "All"

// Filter selects records. Empty fields match anything; Province also
// matches anything when it is AllProvinces.
type Filter struct {
	Sector     string
	SeriesName string
	SubSector1 string
	SubSector2 string
	Indicator  string
	Province   string
	Tag        string
	Year       int
}

// Match tells if the record passes the filter.
func (f Filter) Match(r *Record) bool {
	switch {
	case f.Sector != "" && r.Sector != f.Sector:
		return false
	case f.SeriesName != "" && r.SeriesName != f.SeriesName:
		return false
	case f.SubSector1 != "" && r.SubSector1 != f.SubSector1:
		return false
	case f.SubSector2 != "" && r.SubSector2 != f.SubSector2:
		return false
	case f.Indicator != "" && r.Indicator != f.Indicator:
		return false
	case f.Tag != "" && r.Tag != f.Tag:
		return false
	case f.Year != 0 && r.Year != f.Year:
		return false
	case f.Province != "" && f.Province != AllProvinces &&
		r.Province != f.Province:
		return false
	}

	return true
}

// Apply returns the records that pass the filter, keeping their order.
func (f Filter) Apply(rr []Record) []Record {
	result := []Record{}

	for i := range rr {
		if f.Match(&rr[i]) {
			result = append(result, rr[i])
		}
	}

	return result
}
