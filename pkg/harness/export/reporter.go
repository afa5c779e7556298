package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/fin-tools/descuento/pkg/models/domain"
)

type LayoutConfig struct {
	TitleWidth   int
	SectionWidth int
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		TitleWidth:   60,
		SectionWidth: 30,
	}
}

// Reporter renders a run report as plain UTF-8 text.
type Reporter struct {
	config LayoutConfig
}

func NewReporter() *Reporter {
	return &Reporter{config: DefaultLayoutConfig()}
}

// Filename returns the unique report name for a run. The timestamp comes
// from the run's finish time, so the name is stable within a run and differs
// across runs at second resolution.
func (r *Reporter) Filename(report *domain.RunReport) string {
	return fmt.Sprintf("informe_pruebas_%s.txt", report.FinishedAt.Format("20060102_150405"))
}

// Handle writes the rendered report to its uniquely named file under dir,
// in a single open-write-close sequence, and returns the path written.
func (r *Reporter) Handle(report *domain.RunReport, dir string) (string, error) {
	path := filepath.Join(dir, r.Filename(report))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	if err := r.Render(f, report); err != nil {
		f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// Render writes the report text to w.
func (r *Reporter) Render(w io.Writer, report *domain.RunReport) error {
	funcMap := template.FuncMap{
		"border": func() string {
			return strings.Repeat("=", r.config.TitleWidth)
		},
		"rule": func() string {
			return strings.Repeat("-", r.config.SectionWidth)
		},
		"marker": func(s domain.TestStatus) string {
			if s == domain.StatusPass {
				return "✓"
			}
			return "✗"
		},
		"seconds": func(d time.Duration) string {
			return fmt.Sprintf("%.3f", d.Seconds())
		},
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl := `{{border}}
{{.Title}}
{{border}}
Run ID: {{.RunID}}
Fecha de creación: {{.FinishedAt.Format "2006-01-02 15:04:05"}}
Duración: {{seconds .Duration}} segundos

RESUMEN DE RESULTADOS:
{{rule}}
Total de pruebas: {{.Total}}
Pruebas exitosas: {{.Passed}}
Pruebas fallidas: {{.Failed}}
Porcentaje de éxito: {{printf "%.1f" .PassRate}}%

DETALLE DE PRUEBAS:
{{rule}}
{{range $i, $rec := .Records}}{{printf "%2d" (inc $i)}}. [{{marker $rec.Status}}] {{$rec.Name}} - {{$rec.Status}}
{{if $rec.ErrMessage}}     Error: {{$rec.ErrMessage}}
{{end}}
{{end}}{{border}}
{{if eq .Failed 0}}RESULTADO FINAL: TODAS LAS PRUEBAS PASARON CORRECTAMENTE
{{else}}RESULTADO FINAL: {{.Failed}} PRUEBA(S) FALLARON
{{end}}{{border}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(w, report)
}
