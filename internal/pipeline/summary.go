package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"billdict/internal"
	"billdict/internal/util"
)

type StatusCount struct {
	Status string
	Count  int
}

type NormalizationSample struct {
	Raw        string
	Normalized string
}

// Summary is the operator-facing report for one run. It is diagnostic only,
// not part of the data contract.
type Summary struct {
	TotalBills   int
	States       int
	StatusCounts []StatusCount
	Samples      []NormalizationSample
}

// Summarize aggregates the record collection: totals, distinct states, a
// status frequency table (count descending), and up to sampleLimit
// deduplicated raw -> normalized bill-number pairs in record order.
func Summarize(records []internal.BillRecord, sampleLimit int) Summary {
	states := map[string]struct{}{}
	statusCounts := map[string]int{}
	seenPairs := map[string]struct{}{}
	samples := []NormalizationSample{}

	for _, rec := range records {
		states[rec.State] = struct{}{}
		if rec.Status != nil {
			statusCounts[*rec.Status]++
		}

		raw := util.Deref(rec.BillNumberRaw)
		normalized := util.Deref(rec.BillNumber)
		key := raw + "\x00" + normalized
		if _, seen := seenPairs[key]; !seen && len(samples) < sampleLimit {
			seenPairs[key] = struct{}{}
			samples = append(samples, NormalizationSample{Raw: raw, Normalized: normalized})
		}
	}

	counts := make([]StatusCount, 0, len(statusCounts))
	for status, count := range statusCounts {
		counts = append(counts, StatusCount{Status: status, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Status < counts[j].Status
	})

	return Summary{
		TotalBills:   len(records),
		States:       len(states),
		StatusCounts: counts,
		Samples:      samples,
	}
}

func PrintSummary(w io.Writer, s Summary) {
	banner := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "CLASSIFICATION DICTIONARY SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total bills: %d\n", s.TotalBills)
	fmt.Fprintf(w, "States: %d\n", s.States)
	fmt.Fprintln(w, "All labeled: harmful")
	fmt.Fprintln(w, "\nStatus breakdown:")
	for _, sc := range s.StatusCounts {
		fmt.Fprintf(w, "  %-40s %d\n", sc.Status, sc.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "BILL NUMBER NORMALIZATION SAMPLES")
	fmt.Fprintln(w, banner)
	for _, sample := range s.Samples {
		fmt.Fprintf(w, "  '%-25s' -> '%s'\n", sample.Raw, sample.Normalized)
	}
}
