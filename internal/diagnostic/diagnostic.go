// Package diagnostic collects status and warning messages produced while
// loading, merging, resolving and emitting a schema graph.
//
// Recoverable conditions (a missing import target, a dropped conflicting
// particle, an unresolved type reference) are reported here and never alter
// the process's terminal success signal; only parse failures abort a run.
package diagnostic

import (
	"fmt"
	"io"
	"strings"
)

// Severity is the level of a diagnostic message.
type Severity int

const (
	Info Severity = iota
	Warning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single status message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Schema is the path of the schema document this relates to (if any).
	Schema string
	// Subject is the type or particle name this relates to (if any).
	Subject string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Schema != "" {
		prefix = append(prefix, d.Schema)
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics accumulates messages across all compilation phases.
type Diagnostics struct {
	Infos    []Diagnostic
	Warnings []Diagnostic
}

// AddInfo records a progress message.
func (d *Diagnostics) AddInfo(code, message, schema, subject string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Subject:  subject,
	})
}

// AddWarning records a recovered condition.
func (d *Diagnostics) AddWarning(code, message, schema, subject string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Schema:   schema,
		Subject:  subject,
	})
}

// HasWarnings reports whether any recovered condition was seen.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Infos = append(d.Infos, other.Infos...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Report writes every message to w, warnings last, one per line.
func (d *Diagnostics) Report(w io.Writer) {
	for _, diag := range d.Infos {
		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
	}

	for _, diag := range d.Warnings {
		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag)
	}
}
