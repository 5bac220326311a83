package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// HTMLFormatter produces a static HTML report with the full per-year table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, projection); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
