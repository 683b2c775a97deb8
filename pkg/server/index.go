package server

import (
	"html/template"
	"net/http"
)

// indexHTML is the interactive preview page. It is deliberately
// self-contained: one template, no assets, so the server stays a single
// binary.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>puzzgen</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 64rem; color: #222; }
    form { display: flex; gap: 1rem; flex-wrap: wrap; align-items: end; margin-bottom: 1.5rem; }
    label { display: flex; flex-direction: column; font-size: 0.8rem; color: #555; }
    input { width: 6rem; padding: 0.3rem; font-size: 1rem; }
    button { padding: 0.4rem 1.2rem; font-size: 1rem; }
    #preview { border: 1px solid #ddd; background: #fff; }
  </style>
</head>
<body>
  <h1>puzzgen</h1>
  <p>Jigsaw puzzle outline generator. Adjust and regenerate; the image below is the cut-ready SVG.</p>
  <form action="/puzzle.svg" method="get">
    <label>width (mm)<input name="width" type="number" step="any" value="{{.Width}}"></label>
    <label>height (mm)<input name="height" type="number" step="any" value="{{.Height}}"></label>
    <label>columns<input name="columns" type="number" min="1" value="{{.Columns}}"></label>
    <label>rows<input name="rows" type="number" min="1" value="{{.Rows}}"></label>
    <label>jitter (%)<input name="jitter" type="number" step="any" min="0" value="{{.Jitter}}"></label>
    <label>seed<input name="seed" type="number" min="0" value="{{.Seed}}"></label>
    <button type="submit">Generate</button>
  </form>
  <img id="preview" src="/puzzle.svg?seed={{.Seed}}" alt="puzzle outline preview">
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	Width, Height, Jitter float64
	Columns, Rows         int
	Seed                  uint64
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, indexData{
		Width: 300, Height: 200,
		Columns: 15, Rows: 10,
		Jitter: 10, Seed: 42,
	})
	if err != nil {
		s.logger.Error("render index", "err", err)
	}
}
