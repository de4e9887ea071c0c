// Package output writes transformed jobs as JSON, YAML or a text summary.
package output

import (
	"errors"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	uioutput "go.trai.ch/cachekey/internal/ui/output"
	"go.trai.ch/cachekey/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.JobWriter = (*Writer)(nil)

// Writer implements ports.JobWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes jobs to w in the given format.
func (wr *Writer) Write(w io.Writer, jobs []domain.Job, format domain.OutputFormat) error {
	var err error
	switch format {
	case domain.FormatJSON:
		err = writeJSON(w, jobs)
	case domain.FormatYAML:
		err = writeYAML(w, jobs)
	case domain.FormatText:
		err = writeText(w, jobs)
	default:
		return errors.Join(domain.ErrUnknownOutputFormat, zerr.With(domain.ErrUnknownOutputFormat, "format", string(format)))
	}
	if err != nil {
		return errors.Join(domain.ErrOutputWriteFailed, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "format", string(format)))
	}
	return nil
}

func writeJSON(w io.Writer, jobs []domain.Job) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(toRecords(jobs))
}

func writeYAML(w io.Writer, jobs []domain.Job) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(jobs)); err != nil {
		return err
	}
	return enc.Close()
}

// toRecords converts jobs to plain maps so that extra keys sit next to the
// interpreted ones.
func toRecords(jobs []domain.Job) []map[string]any {
	records := make([]map[string]any, 0, len(jobs))
	for _, job := range jobs {
		records = append(records, toRecord(job))
	}
	return records
}

func toRecord(job domain.Job) map[string]any {
	rec := maps.Clone(job.Extra)
	if rec == nil {
		rec = make(map[string]any, 3)
	}
	rec["label"] = job.Label

	attrs := maps.Clone(job.Attributes.Extra)
	if attrs == nil {
		attrs = make(map[string]any, 1)
	}
	if c := job.Attributes.Cache; c != nil {
		cache := map[string]any{"type": c.Type}
		if c.Resources != nil {
			cache["resources"] = c.Resources
		}
		if c.Parameters != nil {
			cache["parameters"] = c.Parameters
		}
		attrs["cache"] = cache
	}
	rec["attributes"] = attrs

	if job.Cache != nil {
		desc := job.Cache.Clone()
		rec["cache"] = map[string]any{
			"type":        desc.Type,
			"name":        desc.Name,
			"digest-data": desc.DigestData,
		}
	}
	return rec
}

func writeText(w io.Writer, jobs []domain.Job) error {
	out := uioutput.New(w)
	accent := out.Color(string(style.Accent))
	muted := out.Color(string(style.Slate))

	labelWidth, typeWidth := 0, 0
	for _, job := range jobs {
		labelWidth = max(labelWidth, lipgloss.Width(job.Label))
		if job.Cache != nil {
			typeWidth = max(typeWidth, lipgloss.Width(job.Cache.Type))
		}
	}

	var sb strings.Builder
	for _, job := range jobs {
		sb.WriteString(out.String(job.Label).Bold().Foreground(accent).String())
		sb.WriteString(pad(job.Label, labelWidth) + "  ")

		if job.Cache == nil {
			sb.WriteString(out.String("no cache").Foreground(muted).String() + "\n")
			continue
		}

		sb.WriteString(job.Cache.Type + pad(job.Cache.Type, typeWidth) + "  ")
		sb.WriteString(out.String(entries(len(job.Cache.DigestData))).Foreground(muted).String() + "\n")
		for _, entry := range job.Cache.DigestData {
			sb.WriteString(formatEntry(out, entry) + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatEntry(out *termenv.Output, entry string) string {
	if entry == "" {
		return "  " + out.String(style.Circle+" "+strconv.Quote(entry)).Foreground(out.Color(string(style.Yellow))).String()
	}
	return "  " + out.String(style.Dot).Foreground(out.Color(string(style.Green))).String() + " " + entry
}

func pad(s string, width int) string {
	return strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

func entries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
