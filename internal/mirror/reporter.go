package mirror

// Reporter receives progress in the order it is produced. Implementations
// decide how to cross into their presentation context.
type Reporter interface {
	Report(percent int, message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(percent int, message string)

func (f ReporterFunc) Report(percent int, message string) { f(percent, message) }

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(int, string) {})
