package main

import (
	"io"
	"text/template"

	"github.com/plus3/compose/ecs"
)

type Report struct {
	Config DemoConfig
	Stats  *ecs.ManagerStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Entity Manager Report

## Run Configuration
- **Extra Entities:** {{.Config.Entities}}
- **Lifetime (ticks):** {{.Config.Lifetime}}
- **Tick Interval:** {{.Config.Interval}}

## Lifecycle
- **Ticks:** {{.Stats.Ticks}}
- **Committed:** {{.Stats.Committed}}
- **Reaped:** {{.Stats.Reaped}}
- **Live at exit:** {{.Stats.Live}}
- **Pending at exit:** {{.Stats.Pending}}

## Tick Time
{{- if .Stats.Ticks}}
  - **Avg:** {{.Stats.AvgDuration}}
  - **Min:** {{.Stats.MinDuration}}
  - **Max:** {{.Stats.MaxDuration}}
  - **Total:** {{.Stats.TotalTime}}
{{- else}}
  - no ticks recorded
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
