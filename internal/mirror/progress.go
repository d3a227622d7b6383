package mirror

import "fmt"

const (
	// ScaffoldPercent is reported once the destination skeleton exists.
	ScaffoldPercent = 5
	ScaffoldMessage = "Main Directories Created"
)

// Phase is one half of a subdirectory's share of the progress bar.
type Phase int

const (
	PhaseDirectories Phase = iota + 1
	PhaseFiles
)

// Percent weights item counter of total within subdirectory index (1-based)
// of count. The directory phase fills the first half of the subdirectory's
// local 0-100 range and the file phase the second half; the local value is
// scaled by index/count into the 95 points left after scaffolding.
//
// The exact value is 5 + (counter + offset) * index * 95 / (2 * total * count)
// with offset = total for PhaseFiles, rounded half to even as a whole.
// Engine reports never go below a value already reported, so a Reporter may
// see the previous percentage where this raw value dips.
func Percent(phase Phase, counter, total, index, count int) int {
	if total <= 0 || count <= 0 {
		return ScaffoldPercent
	}
	num := int64(counter)
	if phase == PhaseFiles {
		num += int64(total)
	}
	num *= int64(index) * 95
	den := 2 * int64(total) * int64(count)
	num += ScaffoldPercent * den
	return int(divRoundHalfEven(num, den))
}

// Message is the status text shown next to the percentage.
func Message(phase Phase, counter, total int) string {
	if phase == PhaseFiles {
		return fmt.Sprintf("Copying File %d out of %d", counter, total)
	}
	return fmt.Sprintf("Creating Directory %d out of %d", counter, total)
}

// divRoundHalfEven divides non-negative operands.
func divRoundHalfEven(num, den int64) int64 {
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}
	return q
}

// tracker never lets the reported percentage go backwards. The weighting
// restarts low at the first directory of every subdirectory after the
// first, so the raw value can dip below what was already shown.
type tracker struct {
	reporter Reporter
	high     int
}

func (t *tracker) report(percent int, message string) {
	if percent < t.high {
		percent = t.high
	}
	t.high = percent
	t.reporter.Report(percent, message)
}
