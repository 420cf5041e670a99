// Where: ec2-starter/internal/ui/report.go
// What: Rendering of invocation reports.
// Why: Support human, machine and templated output for the same result.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Report is the printable form of one invocation outcome.
type Report struct {
	Outcome       string `json:"outcome" yaml:"outcome"`
	InstanceID    string `json:"instanceId,omitempty" yaml:"instanceId,omitempty"`
	PreviousState string `json:"previousState,omitempty" yaml:"previousState,omitempty"`
	CurrentState  string `json:"currentState,omitempty" yaml:"currentState,omitempty"`
	DryRun        bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	Failure       string `json:"failure,omitempty" yaml:"failure,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Success reports whether the invocation succeeded.
func (r Report) Success() bool {
	return r.Outcome == "success"
}

// RenderReport writes report to out. A non-empty format is a text/template
// with sprig functions and takes precedence over output.
func RenderReport(out io.Writer, report Report, output, format string) error {
	if strings.TrimSpace(format) != "" {
		return renderTemplate(out, report, format)
	}

	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", OutputText:
		renderText(New(out), report)
		return nil
	case OutputJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case OutputYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func renderTemplate(out io.Writer, report Report, format string) error {
	tmpl, err := template.New("format").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return fmt.Errorf("parse format template: %w", err)
	}
	if err := tmpl.Execute(out, report); err != nil {
		return fmt.Errorf("render format template: %w", err)
	}
	_, err = fmt.Fprintln(out)
	return err
}

func renderText(console *Console, report Report) {
	emoji, title := "✗", report.Outcome
	if report.Success() {
		emoji, title = "✅", "Start requested"
		if report.DryRun {
			title = "Start permitted (dry run)"
		}
	}
	console.Block(emoji, title, []KeyValue{
		{Key: "Instance", Value: report.InstanceID},
		{Key: "Previous state", Value: report.PreviousState},
		{Key: "Current state", Value: report.CurrentState},
		{Key: "Failure", Value: report.Failure},
		{Key: "Error", Value: report.Error},
	})
}
