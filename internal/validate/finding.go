package validate

// Severity ranks a Finding. Only SeverityError blocks a backup.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Information"
	default:
		return "Unknown"
	}
}

// Finding is one validation result.
type Finding struct {
	Severity Severity
	Message  string
}

// String renders the finding as a log line, e.g. "Warning: No revision number specified.".
func (f Finding) String() string {
	return f.Severity.String() + ": " + f.Message
}

// Findings keeps the order in which the rules ran.
type Findings []Finding

func (fs Findings) has(s Severity) bool {
	for _, f := range fs {
		if f.Severity == s {
			return true
		}
	}
	return false
}

// HasErrors reports whether any finding blocks the backup.
func (fs Findings) HasErrors() bool { return fs.has(SeverityError) }

// HasWarnings reports whether any advisory warning was raised.
func (fs Findings) HasWarnings() bool { return fs.has(SeverityWarning) }

// Lines renders every finding with its severity prefix.
func (fs Findings) Lines() []string {
	lines := make([]string, 0, len(fs))
	for _, f := range fs {
		lines = append(lines, f.String())
	}
	return lines
}
