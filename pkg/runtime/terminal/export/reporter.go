package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// Reporter outputs dashboard results to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type dashboardView struct {
	Continent   string
	Country     string
	Period      string
	Days        int
	Summary     domain.Summary
	GrowthText  string
	Resurgence  bool
	Conclusions []string
}

func (c *Reporter) Handle(dashboard *domain.Dashboard) error {
	view := dashboardView{
		Continent:   dashboard.Filter.Continent,
		Country:     dashboard.Filter.Country,
		Days:        len(dashboard.Series.Points),
		Summary:     dashboard.Summary,
		GrowthText:  "sin datos",
		Resurgence:  dashboard.Resurgence,
		Conclusions: dashboard.Conclusions,
	}
	if first, ok := dashboard.Series.First(); ok {
		last, _ := dashboard.Series.Last()
		view.Period = fmt.Sprintf("%s a %s",
			first.Date.Format("2006-01-02"), last.Date.Format("2006-01-02"))
	}
	if dashboard.Growth != nil {
		view.GrowthText = dashboard.Growth.Display()
	}

	tmpl := `
Informe COVID-19 — {{.Country}} ({{.Continent}})
{{if .Period}}Período: {{.Period}} ({{.Days}} días)
{{end}}
Casos confirmados: {{.Summary.ConfirmedTotal}}
Activos:           {{.Summary.ActiveTotal}}
Recuperados:       {{.Summary.RecoveredTotal}}
Fallecidos:        {{.Summary.DeceasedTotal}}

Tasa de crecimiento: {{.GrowthText}}
Rebrote: {{if .Resurgence}}detectado{{else}}no detectado{{end}}

Conclusiones:
{{range .Conclusions}}- {{.}}
{{end}}
`
	t, err := template.New("dashboard").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

// HandleList prints a titled list of names.
func (c *Reporter) HandleList(title string, items []string) error {
	if _, err := fmt.Fprintf(c.writer, "%s:\n", title); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(c.writer, "- %s\n", item); err != nil {
			return err
		}
	}
	return nil
}

// Printf writes a formatted line to the report output.
func (c *Reporter) Printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(c.writer, format, args...)
	return err
}
