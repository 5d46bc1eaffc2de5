package verify

import (
	"fmt"
	"io"
	"strings"
)

const rule = "============================================================"

// Report renders a verification result as a human-readable text report.
func Report(w io.Writer, r *Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Cyclical encoding verification (run %s)\n", r.RunID)
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "\nHour continuity:")
	fmt.Fprintf(&b, "Hour 23: %s\n", formatVector(r.Hour23.HourComponents()))
	fmt.Fprintf(&b, "Hour 0:  %s\n", formatVector(r.Hour0.HourComponents()))
	fmt.Fprintf(&b, "Hour 12: %s\n", formatVector(r.Hour12.HourComponents()))

	fmt.Fprintf(&b, "\nDistance between hour 23 and 0:  %.4f (should be small)\n", r.DistHour23To0)
	fmt.Fprintf(&b, "Distance between hour 23 and 12: %.4f (should be large)\n", r.DistHour23To12)
	fmt.Fprintf(&b, "Distance between hour 0 and 12:  %.4f (should be large)\n", r.DistHour0To12)

	fmt.Fprintf(&b, "\nLinear encoding distance (23 vs 0): %.4f\n", r.LinearDistHour23To0)
	fmt.Fprintf(&b, "Cyclical encoding is %.1fx better\n", r.Improvement)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintln(&b, "Month continuity:")
	fmt.Fprintf(&b, "December (month 12): %s\n", formatVector(r.Dec.MonthComponents()))
	fmt.Fprintf(&b, "January (month 1):   %s\n", formatVector(r.Jan.MonthComponents()))
	fmt.Fprintf(&b, "\nDistance between Dec and Jan: %.4f (should be small)\n", r.DistDecToJan)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintln(&b, "Verification checks:")
	for _, c := range r.Checks {
		op := ">"
		if c.Below {
			op = "<"
		}
		mark := "FAIL"
		if c.Pass {
			mark = "ok"
		}
		fmt.Fprintf(&b, "  [%s] %s: %.4f %s %.1f\n", mark, c.Name, c.Value, op, c.Threshold)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintln(&b, "Sample feature vectors:")
	fmt.Fprintf(&b, "\nWeekday morning (8 AM, June):\n%s\n", formatVector(r.Morning))
	fmt.Fprintf(&b, "\nWeekend evening (18:00, December):\n%s\n", formatVector(r.Evening))

	if r.AllPassed() {
		fmt.Fprintln(&b, "\nAll checks passed")
	} else {
		fmt.Fprintln(&b, "\nSome checks FAILED")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.3f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
