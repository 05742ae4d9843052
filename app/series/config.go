package series

// Config holds the options of a multi-series line chart, in the shape
// ApexCharts expects them.
//
// Formatters are functions in ApexCharts and cannot travel as JSON, the
// rendering script attaches them.
type Config struct {
	Series     []Series   `json:"series"`
	Labels     []int      `json:"labels"`
	XAxis      XAxis      `json:"xaxis"`
	YAxis      YAxis      `json:"yaxis"`
	Chart      Chart      `json:"chart"`
	Stroke     Stroke     `json:"stroke"`
	Title      Title      `json:"title"`
	Subtitle   Title      `json:"subtitle"`
	DataLabels DataLabels `json:"dataLabels"`
	Tooltip    Tooltip    `json:"tooltip"`
}

// Series is one line of the chart: the values of an indicator aligned
// with the year categories of the X axis.
type Series struct {
	Name string    `json:"name"`
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type XAxis struct {
	Type       string `json:"type"`
	Categories []int  `json:"categories"`
}

type YAxis struct {
	Title Text `json:"title"`
}

type Text struct {
	Text string `json:"text"`
}

type Chart struct {
	Height string `json:"height"`
}

type Stroke struct {
	Width int    `json:"width"`
	Curve string `json:"curve"`
}

type Title struct {
	Text  string    `json:"text"`
	Align string    `json:"align"`
	Style TextStyle `json:"style"`
}

type TextStyle struct {
	FontSize   string `json:"fontSize"`
	FontWeight string `json:"fontWeight"`
}

type DataLabels struct {
	Enabled bool `json:"enabled"`
}

type Tooltip struct {
	Shared    bool `json:"shared"`
	Intersect bool `json:"intersect"`
}
