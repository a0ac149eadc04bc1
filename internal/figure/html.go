package figure

import (
	"encoding/json"
	"html/template"
	"io"
	"os"

	"github.com/pkg/browser"
)

// PlotlyCDN is the plotly.js bundle referenced by rendered pages.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var page = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.Script}}"></script>
<style>html,body{margin:0;height:100%}#figure{width:100%;height:100%}</style>
</head>
<body>
<div id="figure"></div>
<script>
var fig = {{.Payload}};
Plotly.newPlot("figure", fig.data, fig.layout, {responsive: true});
</script>
</body>
</html>
`))

// openFile is swapped out in tests.
var openFile = browser.OpenFile

// WriteJSON encodes the figure as indented JSON.
func WriteJSON(w io.Writer, fig *Figure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fig)
}

// WriteHTML writes a standalone page that draws the figure with plotly.js.
func WriteHTML(w io.Writer, fig *Figure) error {
	payload, err := json.Marshal(fig)
	if err != nil {
		return err
	}
	return page.Execute(w, struct {
		Title   string
		Script  string
		Payload template.JS
	}{
		Title:   fig.Layout.Title.Text,
		Script:  PlotlyCDN,
		Payload: template.JS(payload),
	})
}

// Show writes the page to path, or to a new temp file when path is empty,
// and opens it in the default browser when open is set. It returns the
// written path.
func Show(fig *Figure, path string, open bool) (string, error) {
	var (
		f   *os.File
		err error
	)
	if path == "" {
		f, err = os.CreateTemp("", "fitscape-*.html")
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return "", err
	}
	if err := WriteHTML(f, fig); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if open {
		if err := openFile(f.Name()); err != nil {
			return f.Name(), err
		}
	}
	return f.Name(), nil
}
