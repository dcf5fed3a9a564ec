package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

const ruleWidth = 45

// SummarySizes are the example sizes quoted after the table.
var SummarySizes = []int{10, 100, 1000}

func PrintIntro(w io.Writer) {
	fmt.Fprintln(w, "Starting O(n^2) Demonstration...")
	fmt.Fprintln(w, "Notice how doubling the input size (500 to 1000) roughly")
	fmt.Fprintln(w, "quadruples the time taken (2^2 = 4).")
	fmt.Fprintln(w)
}

// PrintTable writes the size/seconds table. With stats set it appends the
// comparison and swap counts of every run.
func PrintTable(w io.Writer, results []Result, stats bool) {
	header := fmt.Sprintf("%-20s | %s", "Input Size (n)", "Time taken (seconds)")
	width := ruleWidth
	if stats {
		header = fmt.Sprintf("%-20s | %-20s | %-12s | %s", "Input Size (n)", "Time taken (seconds)", "Comparisons", "Swaps")
		width = len(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", width))

	for _, r := range results {
		if stats {
			fmt.Fprintf(w, "%-20d | %-20.5f | %-12s | %s\n", r.Size, r.Elapsed.Seconds(),
				humanize.Comma(int64(r.Stats.Comparisons)), humanize.Comma(int64(r.Stats.Swaps)))
			continue
		}
		fmt.Fprintf(w, "%-20d | %-20.5f\n", r.Size, r.Elapsed.Seconds())
	}
}

// PrintSummary explains the n -> n^2 growth for the given sizes.
func PrintSummary(w io.Writer, sizes []int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	for _, n := range sizes {
		fmt.Fprintf(w, "- If n = %s, operations = %s\n", humanize.Comma(int64(n)), humanize.Comma(int64(n)*int64(n)))
	}
	fmt.Fprintln(w, "This steep growth is why O(n^2) algorithms are often avoided for large datasets.")
}
