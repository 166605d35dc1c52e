package campaign

import "fmt"

// Severity classifies a load diagnostic.
type Severity string

// Diagnostic severities. Fatal is used only for the mandatory metadata
// document; everything else is best-effort.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal"
)

// Diagnostic is one accumulated load or validation finding. Diagnostics are
// collected in encounter order and attached to the Campaign; they are never
// raised as control flow during loading.
type Diagnostic struct {
	// Severity is the finding's class.
	Severity Severity
	// Source is the document or stage the finding came from, e.g. "monsters.yaml".
	Source string
	// Message describes the finding, naming the offending entity where known.
	Message string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Source, d.Severity, d.Message)
}

func warning(source, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Source: source, Message: fmt.Sprintf(format, args...)}
}

func loadError(source, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Source: source, Message: fmt.Sprintf(format, args...)}
}

func fatal(source, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityFatal, Source: source, Message: fmt.Sprintf(format, args...)}
}
