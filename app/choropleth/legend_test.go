package choropleth_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alcortesm/datahub/app/choropleth"
)

func TestLegend(t *testing.T) {
	t.Parallel()

	classes := []float64{0, 1000, 2000}

	got, err := choropleth.Legend(classes, choropleth.DefaultColorscale)
	if err != nil {
		t.Fatal(err)
	}

	want := []choropleth.LegendEntry{
		{Label: "0+", Color: "#a1d99b", TextColor: "#000000"},
		{Label: "1,000+", Color: "#31a354", TextColor: "#000000"},
		{Label: "2,000+", Color: "#2c8e34", TextColor: "#ffffff"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestLegend_MoreClassesThanColors(t *testing.T) {
	t.Parallel()

	got, err := choropleth.Legend(
		[]float64{0, 1, 2, 3},
		[]choropleth.Color{"#000000", "#ffffff"},
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Errorf("want 2 entries, got %d: %v", len(got), got)
	}
}

func TestLegend_InvalidColor(t *testing.T) {
	t.Parallel()

	_, err := choropleth.Legend([]float64{0}, []choropleth.Color{"green"})
	if err == nil {
		t.Fatal("unexpected success")
	}
}
