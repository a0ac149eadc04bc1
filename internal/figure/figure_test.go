package figure

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/fitscape/internal/alphabet"
	"github.com/san-kum/fitscape/internal/annotate"
	"github.com/san-kum/fitscape/internal/config"
	"github.com/san-kum/fitscape/internal/landscape"
)

func build(t *testing.T, cfg *config.Config) *Figure {
	t.Helper()
	land, err := landscape.Generate(alphabet.AminoAcids.Len())
	if err != nil {
		t.Fatal(err)
	}
	path, err := annotate.Build(alphabet.AminoAcids, land, annotate.DefaultPairs)
	if err != nil {
		t.Fatal(err)
	}
	return Build(cfg, alphabet.AminoAcids, land, path)
}

func TestBuildTraces(t *testing.T) {
	fig := build(t, config.DefaultConfig())

	if len(fig.Data) != 2+9 {
		t.Fatalf("expected 11 traces, got %d", len(fig.Data))
	}
	if fig.Data[0].Type != "surface" {
		t.Errorf("first trace should be the surface, got %s", fig.Data[0].Type)
	}
	for _, tr := range fig.Data[1:] {
		if tr.Type != "scatter3d" {
			t.Errorf("expected scatter3d, got %s", tr.Type)
		}
	}
}

func TestSurfaceOrientation(t *testing.T) {
	fig := build(t, config.DefaultConfig())
	z := fig.Data[0].Z.([][]float64)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if z[j][i] != landscape.Fitness(i, j, 20) {
				t.Fatalf("z[%d][%d] should hold f(%d,%d)", j, i, i, j)
			}
		}
	}
}

func TestScatterPoints(t *testing.T) {
	fig := build(t, config.DefaultConfig())
	sc := fig.Data[1]

	wantX := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}
	wantY := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	if diff := cmp.Diff(wantX, sc.X); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantY, sc.Y); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
	if sc.Mode != "markers+text" || sc.TextPosition != "top center" {
		t.Errorf("unexpected mode %q / position %q", sc.Mode, sc.TextPosition)
	}
	if sc.Text[0] != "A,C: 0.00" {
		t.Errorf("unexpected first label %q", sc.Text[0])
	}
	if sc.Marker.Colorscale != "RdYlBu" || sc.Marker.Size != 10 {
		t.Errorf("unexpected marker %+v", sc.Marker)
	}
}

func TestSegments(t *testing.T) {
	fig := build(t, config.DefaultConfig())
	points := fig.Data[1]
	xs, ys, zs := points.X.([]int), points.Y.([]int), points.Z.([]float64)

	for k, seg := range fig.Data[2:] {
		want := Trace{
			Type:   "scatter3d",
			Name:   seg.Name,
			X:      []int{xs[k], xs[k+1]},
			Y:      []int{ys[k], ys[k+1]},
			Z:      []float64{zs[k], zs[k+1]},
			Mode:   "lines+markers",
			Line:   &Line{Color: "blue", Width: 2, Dash: "dash"},
			Marker: &Marker{Size: 5, Color: "blue"},
		}
		if diff := cmp.Diff(want, seg); diff != "" {
			t.Errorf("segment %d mismatch (-want +got):\n%s", k, diff)
		}
	}
	if fig.Data[2].Name != "A,C → D,E" {
		t.Errorf("unexpected segment name %q", fig.Data[2].Name)
	}
}

func TestLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	fig := build(t, cfg)

	want := Axis{
		Title:           Title{Text: "Amino Acid 1"},
		TickMode:        "array",
		TickVals:        alphabet.AminoAcids.Indices(),
		TickText:        alphabet.AminoAcids.Symbols(),
		BackgroundColor: "rgba(0,0,0,0)",
	}
	if diff := cmp.Diff(want, fig.Layout.Scene.XAxis); diff != "" {
		t.Errorf("x axis mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Eye{1.5, 1.5, 1.5}, fig.Layout.Scene.Camera.Eye); diff != "" {
		t.Errorf("camera mismatch (-want +got):\n%s", diff)
	}
	if fig.Layout.Title.Text != cfg.Title {
		t.Errorf("unexpected title %q", fig.Layout.Title.Text)
	}
}

func TestColorbarTicks(t *testing.T) {
	fig := build(t, config.DefaultConfig())
	cb := fig.Data[0].Colorbar
	if len(cb.TickVals) != 5 || len(cb.TickText) != 5 {
		t.Fatalf("expected 5 ticks, got %d/%d", len(cb.TickVals), len(cb.TickText))
	}
	if cb.Title.Text != "Fitness" || cb.TickFont.Size != 10 || cb.Title.Font.Size != 12 {
		t.Errorf("unexpected colorbar %+v", cb)
	}
}

func TestWriteJSON(t *testing.T) {
	fig := build(t, config.DefaultConfig())
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fig); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded["data"].([]any)) != 11 {
		t.Error("expected 11 traces in json")
	}
	if !strings.Contains(buf.String(), `"showbackground": false`) {
		t.Error("expected hidden axis backgrounds")
	}
}

func TestWriteHTML(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Title = "<b>landscape</b>"
	fig := build(t, cfg)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, fig); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{PlotlyCDN, "Plotly.newPlot", `"type":"surface"`, "&lt;b&gt;landscape&lt;/b&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestShow(t *testing.T) {
	var opened string
	prev := openFile
	openFile = func(p string) error { opened = p; return nil }
	t.Cleanup(func() { openFile = prev })

	fig := build(t, config.DefaultConfig())
	out := filepath.Join(t.TempDir(), "fig.html")

	got, err := Show(fig, out, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != out || opened != out {
		t.Errorf("expected %s written and opened, got %s / %s", out, got, opened)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("page not written: %v", err)
	}

	opened = ""
	if _, err := Show(fig, filepath.Join(t.TempDir(), "quiet.html"), false); err != nil {
		t.Fatal(err)
	}
	if opened != "" {
		t.Error("page opened although open was false")
	}
}

func TestShowOpenError(t *testing.T) {
	boom := errors.New("no display")
	prev := openFile
	openFile = func(string) error { return boom }
	t.Cleanup(func() { openFile = prev })

	fig := build(t, config.DefaultConfig())
	path, err := Show(fig, filepath.Join(t.TempDir(), "fig.html"), true)
	if !errors.Is(err, boom) {
		t.Errorf("expected open error, got %v", err)
	}
	if path == "" {
		t.Error("expected the written path alongside the error")
	}
}
