package series_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alcortesm/datahub/app/indicator"
	"github.com/alcortesm/datahub/app/series"
)

// recordingTarget remembers the calls made to it.
type recordingTarget struct {
	calls  []string
	config *series.Config
	err    error
}

func (r *recordingTarget) Clear() {
	r.calls = append(r.calls, "clear")
	r.config = nil
}

func (r *recordingTarget) Render(c *series.Config) error {
	r.calls = append(r.calls, "render")
	if r.err != nil {
		return r.err
	}
	r.config = c
	return nil
}

func TestLineChart_Update(t *testing.T) {
	t.Parallel()

	target := &recordingTarget{}
	chart := series.NewLineChart(series.DefaultBuilder(), target)

	records := []indicator.Record{
		rec(2020, "Yield", 100),
		rec(2021, "Yield", 120),
	}

	result, err := chart.Update(records)
	if err != nil {
		t.Fatal(err)
	}

	if result != series.NoUpdate || result.Updated() {
		t.Errorf("want no update, got %#v", result)
	}

	if diff := cmp.Diff([]string{"clear", "render"}, target.calls); diff != "" {
		t.Errorf("calls (-want +got)\n%s", diff)
	}

	if target.config == nil {
		t.Fatal("nothing rendered")
	}

	want := []series.Series{
		{Name: "Yield", Type: "line", Data: []float64{100, 120}},
	}
	if diff := cmp.Diff(want, target.config.Series); diff != "" {
		t.Errorf("series (-want +got)\n%s", diff)
	}
}

func TestLineChart_UpdateClearsBeforeEachRender(t *testing.T) {
	t.Parallel()

	target := &recordingTarget{}
	chart := series.NewLineChart(series.Builder{}, target)

	for i := 0; i < 3; i++ {
		if _, err := chart.Update(nil); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"clear", "render", "clear", "render", "clear", "render"}
	if diff := cmp.Diff(want, target.calls); diff != "" {
		t.Errorf("calls (-want +got)\n%s", diff)
	}
}

func TestLineChart_UpdateError(t *testing.T) {
	t.Parallel()

	cause := errors.New("some render error")
	target := &recordingTarget{err: cause}
	chart := series.NewLineChart(series.DefaultBuilder(), target)

	result, err := chart.Update([]indicator.Record{rec(2020, "Yield", 1)})
	if err == nil {
		t.Fatal("unexpected success")
	}

	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("cannot find cause (%v) in error: %v", cause, err)
	}

	if result != series.NoUpdate {
		t.Errorf("want no update, got %#v", result)
	}
}
