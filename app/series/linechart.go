package series

import (
	"fmt"

	"github.com/alcortesm/datahub/app/indicator"
)

// Target is the place where a chart gets drawn, like the container of a
// dashboard panel.
type Target interface {
	// Clear removes whatever was drawn in the target.
	Clear()
	// Render draws the chart in the target.
	Render(*Config) error
}

// Result is what a chart callback hands back to its host.
type Result struct {
	updated bool
}

// Updated tells if the host must refresh its own output.
func (r Result) Updated() bool { return r.updated }

// NoUpdate tells the host there is nothing to update: the chart has
// already been drawn in its target.
var NoUpdate = Result{}

// LineChart redraws a line chart in a fixed target each time it gets
// new records.
type LineChart struct {
	builder Builder
	target  Target
}

func NewLineChart(b Builder, t Target) *LineChart {
	return &LineChart{
		builder: b,
		target:  t,
	}
}

// Update clears the target and draws the chart for the given records.
func (c *LineChart) Update(records []indicator.Record) (Result, error) {
	c.target.Clear()

	config := c.builder.Build(records)

	if err := c.target.Render(config); err != nil {
		return NoUpdate, fmt.Errorf("rendering line chart: %v", err)
	}

	return NoUpdate, nil
}
