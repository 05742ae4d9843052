package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"text/template"

	"github.com/alcortesm/datahub/app/series"
)

var (
	chartTmpl   = template.Must(template.New("chart").Parse(chartTemplate))
	noChartTmpl = template.Must(template.New("no chart").Parse(noChart))
)

// Panel is a series.Target that draws line charts as the script that
// renders them, with ApexCharts, into a container of the dashboard.
//
// The Clear, Render and Script methods are thread-safe.
type Panel struct {
	id     string
	lock   sync.Mutex
	script []byte
}

// NewPanel returns an empty panel for the container with the given id.
func NewPanel(id string) *Panel {
	return &Panel{id: id}
}

func (p *Panel) ID() string {
	return p.id
}

func (p *Panel) Clear() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.script = nil
}

func (p *Panel) Render(c *series.Config) error {
	options, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding chart options: %v", err)
	}

	data := struct {
		ID      string
		Options string
	}{
		ID:      p.id,
		Options: string(options),
	}

	b := &bytes.Buffer{}
	if err := chartTmpl.Execute(b, data); err != nil {
		return fmt.Errorf("executing chart template: %v", err)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.script = b.Bytes()

	return nil
}

// Script returns the script that draws the last rendered chart, or one
// that shows a message if nothing has been rendered since the last
// time the panel was cleared.
func (p *Panel) Script() []byte {
	p.lock.Lock()
	script := p.script
	p.lock.Unlock()

	if script != nil {
		return script
	}

	b := &bytes.Buffer{}
	data := struct{ ID string }{ID: p.id}
	if err := noChartTmpl.Execute(b, data); err != nil {
		// the template is static and its data is a string
		panic(err)
	}

	return b.Bytes()
}
