// Package pacfile renders and validates proxy auto-config documents.
package pacfile

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

// TemplateName is the file the renderer looks for inside a template
// directory override.
const TemplateName = "proxy.pac.tmpl"

//go:embed templates/proxy.pac.tmpl
var builtinFS embed.FS

var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,
	"last": func(i int, s []string) bool {
		return i == len(s)-1
	},
}

// Render produces the PAC document for the given domains. The domain
// list is copied and sorted before emission so rendering any
// permutation of the same set yields byte-identical output. When
// templateDir is empty the embedded template is used; otherwise
// <templateDir>/proxy.pac.tmpl.
func Render(domains []string, templateDir string) (string, error) {
	sorted := append([]string(nil), domains...)
	sort.Strings(sorted)

	tmpl := template.New(TemplateName).Funcs(templateFuncs)
	var err error
	if templateDir == "" {
		_, err = tmpl.ParseFS(builtinFS, "templates/"+TemplateName)
	} else {
		_, err = tmpl.ParseFiles(filepath.Join(templateDir, TemplateName))
	}
	if err != nil {
		return "", fmt.Errorf("loading PAC template: %w", err)
	}

	var buf bytes.Buffer
	data := struct{ Domains []string }{Domains: sorted}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering PAC template: %w", err)
	}
	return buf.String(), nil
}
