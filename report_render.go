package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

//go:embed data/templates/*.tmpl
var builtinTemplates embed.FS

// Each file defines a template of the same name.
var templateNames = []string{"report", "error"}

func buildTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Shortest decimal that round-trips: 10505/1000 renders as 10.505.
		"formatKHs": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"formatCount": func(v uint64) string {
			return strconv.FormatUint(v, 10)
		},
	}
}

// loadTemplates parses the page templates. A file in dataDir/templates
// overrides the built-in copy of the same name so operators can restyle the
// page without rebuilding.
func loadTemplates(dataDir string) (*template.Template, error) {
	tmpl := template.New("").Funcs(buildTemplateFuncs())
	for _, name := range templateNames {
		file := name + ".tmpl"
		src, err := readTemplateSource(dataDir, file)
		if err != nil {
			return nil, fmt.Errorf("load %s template: %w", name, err)
		}
		if _, err := tmpl.New(file).Parse(string(src)); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %s does not define %q", file, name)
		}
	}
	return tmpl, nil
}

func readTemplateSource(dataDir, file string) ([]byte, error) {
	if dataDir != "" {
		src, err := os.ReadFile(filepath.Join(dataDir, "templates", file))
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return builtinTemplates.ReadFile("data/templates/" + file)
}

type reportRenderer struct {
	tmpl *template.Template
}

// Render produces the complete HTML page for rep. Output depends only on rep.
func (r reportRenderer) Render(rep Report) (string, error) {
	if r.tmpl == nil {
		return "", errors.New("render report: templates not loaded")
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "report", rep); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
