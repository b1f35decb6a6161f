package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. "duplicate_edge".
	Code    string
	Message string
	// Subject is the schema id or "from -> to" edge label, if any.
	Subject string
	// Field is the record path the finding is about, if any.
	Field       string
	Suggestions []string
}

// Diagnostics holds the findings of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files diag under its severity and returns a pointer to the stored
// copy so suggestions can be attached. The pointer is valid until the next
// Add.
func (d *Diagnostics) Add(diag Diagnostic) *Diagnostic {
	var list *[]Diagnostic

	switch diag.Severity {
	case SeverityError:
		list = &d.Errors
	case SeverityWarning:
		list = &d.Warnings
	default:
		list = &d.Infos
	}

	*list = append(*list, diag)

	return &(*list)[len(*list)-1]
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, field string) *Diagnostic {
	return d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Subject: subject, Field: field})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, field string) *Diagnostic {
	return d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Subject: subject, Field: field})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, field string) *Diagnostic {
	return d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Subject: subject, Field: field})
}

// Suggest attaches suggestions to the diagnostic.
func (d *Diagnostic) Suggest(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of findings.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every finding, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of all errors, in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Merge appends another set of findings.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err folds all errors into one error, or returns nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the diagnostic as "[subject] field: [code] message (did you mean a, b?)".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
