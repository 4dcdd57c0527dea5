// Package assets embeds the measurement page sources and builds the served page.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

var (
	//go:embed index.html.tpl
	indexTemplate string
	//go:embed style.css
	styleCSS string
	//go:embed script.js
	scriptJS string
	//go:embed favicon.svg
	faviconSVG string
)

// PageData is injected into the index template.
type PageData struct {
	CSS string
	JS  string
	SVG string
}

// Minifier returns a minifier for every media type the page uses.
func Minifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}

// Favicon returns the minified page icon.
func Favicon(m *minify.M) ([]byte, error) {
	out, err := m.String("image/svg+xml", faviconSVG)
	if err != nil {
		return nil, fmt.Errorf("minify SVG: %w", err)
	}

	return []byte(out), nil
}

// Build renders the index page with inlined, minified styles, script and icon.
func Build(m *minify.M) ([]byte, error) {
	cssMin, err := m.String("text/css", styleCSS)
	if err != nil {
		return nil, fmt.Errorf("minify CSS: %w", err)
	}

	jsMin, err := m.String("text/javascript", scriptJS)
	if err != nil {
		return nil, fmt.Errorf("minify JS: %w", err)
	}

	svgMin, err := Favicon(m)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, PageData{
		CSS: cssMin,
		JS:  jsMin,
		SVG: string(svgMin),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	finalHTML, err := m.String("text/html", buf.String())
	if err != nil {
		return nil, fmt.Errorf("minify HTML: %w", err)
	}

	return []byte(finalHTML), nil
}
