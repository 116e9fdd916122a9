package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/thurmanmarka/moonglide"
	mglog "github.com/thurmanmarka/moonglide/internal/log"
	"github.com/thurmanmarka/moonglide/internal/reference"
)

// errorSample collects signed errors (our - reference) in minutes.
type errorSample struct {
	values []float64
}

func (e *errorSample) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	e.values = append(e.values, v)
}

func (e *errorSample) summary(name string) {
	fmt.Printf("\n%s (minutes, ours - reference):\n", name)
	if len(e.values) == 0 {
		fmt.Println("  no samples")
		return
	}

	abs := make([]float64, len(e.values))
	for i, v := range e.values {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs)

	fmt.Printf("  count:  %d\n", len(e.values))
	fmt.Printf("  min:    %.3f\n", floats.Min(e.values))
	fmt.Printf("  max:    %.3f\n", floats.Max(e.values))
	fmt.Printf("  mean:   %.3f\n", stat.Mean(e.values, nil))
	fmt.Printf("  stddev: %.3f\n", stat.StdDev(e.values, nil))
	fmt.Printf("  p95|e|: %.3f\n", stat.Quantile(0.95, stat.Empirical, abs, nil))
}

// Reference CSV format, used instead of meeus when -refcsv is given:
//
//	kind,time
//	new_moon,2024-01-11T11:57:00Z
//	first_quarter,2024-01-18T03:52:00Z
//
// kind is new_moon, first_quarter, full_moon or last_quarter and time is
// RFC 3339. Each row is compared against the nearest phase of that kind.
func main() {
	var (
		fromYear = flag.Int("from", 2000, "first year to sweep")
		toYear   = flag.Int("to", 2030, "last year to sweep (inclusive)")
		refCSV   = flag.String("refcsv", "", "optional reference CSV (kind,time); defaults to the meeus solutions")
		outCSV   = flag.String("outcsv", "", "optional path to write per-phase error CSV")
		verbose  = flag.Bool("verbose", false, "print every comparison instead of only the summary")
		debug    = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	logger := mglog.NewOrNop(*debug)
	defer logger.Sync() //nolint:errcheck

	if *toYear < *fromYear {
		logger.Fatal("-to must not be before -from", zap.Int("from", *fromYear), zap.Int("to", *toYear))
	}

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			logger.Fatal("failed to create outcsv", zap.String("path", *outCSV), zap.Error(err))
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{"kind", "ours", "reference", "error_min"}); err != nil {
			logger.Fatal("failed to write outcsv header", zap.Error(err))
		}
	}

	var (
		perKind [4]errorSample
		all     errorSample
	)

	record := func(kind moonglide.QuarterKind, ours, ref time.Time) {
		e := ours.Sub(ref).Minutes()
		perKind[kind%4].add(e)
		all.add(e)

		if *verbose {
			fmt.Printf("%-14s ours=%s ref=%s err=%+.2f min\n",
				kind, ours.Format(time.RFC3339), ref.Format(time.RFC3339), e)
		}
		if outWriter != nil {
			rec := []string{kind.String(), ours.Format(time.RFC3339), ref.Format(time.RFC3339), fmt.Sprintf("%.6f", e)}
			if err := outWriter.Write(rec); err != nil {
				logger.Warn("failed to write outcsv row", zap.Error(err))
			}
		}
	}

	if *refCSV != "" {
		if err := compareCSV(*refCSV, logger, record); err != nil {
			logger.Fatal("reference comparison failed", zap.Error(err))
		}
	} else {
		compareMeeus(*fromYear, *toYear, logger, record)
	}

	fmt.Println("=== moonglide profiler summary ===")
	if *refCSV != "" {
		fmt.Printf("Reference: %s\n", *refCSV)
	} else {
		fmt.Printf("Reference: meeus ch. 49 (JDE), %d–%d\n", *fromYear, *toYear)
	}

	for k := moonglide.NewMoon; k <= moonglide.LastQuarter; k++ {
		perKind[k].summary(k.String())
	}
	all.summary("all phases")
}

// compareMeeus walks month by month and compares each lunation's four
// phases with the meeus solutions.
func compareMeeus(fromYear, toYear int, logger *zap.Logger, record func(moonglide.QuarterKind, time.Time, time.Time)) {
	seen := make(map[int64]bool)

	start := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	for t := start; t.Before(end); t = t.AddDate(0, 0, 14) {
		s, err := moonglide.At(t, moonglide.WithLogger(logger))
		if err != nil {
			logger.Warn("snapshot failed", zap.Time("time", t), zap.Error(err))
			continue
		}
		q, err := s.Quarters()
		if err != nil {
			logger.Warn("phase search failed", zap.Time("time", t), zap.Error(err))
			continue
		}

		for k := moonglide.NewMoon; k <= moonglide.LastQuarter; k++ {
			key := int64(q[k] / 3600)
			if seen[key] {
				continue
			}
			seen[key] = true

			ours := q.Time(k)
			ref := reference.Nearest(int(k), ours)
			record(k, ours, ref)
		}
	}
}

// compareCSV compares each reference row with the nearest phase of the same
// kind.
func compareCSV(path string, logger *zap.Logger, record func(moonglide.QuarterKind, time.Time, time.Time)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open refcsv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return errors.New("empty CSV file")
	}

	startIdx := 0
	if len(records[0]) >= 1 && strings.EqualFold(records[0][0], "kind") {
		startIdx = 1
	}

	kinds := map[string]moonglide.QuarterKind{}
	for k := moonglide.NewMoon; k <= moonglide.LastQuarter; k++ {
		kinds[k.String()] = k
	}

	for i := startIdx; i < len(records); i++ {
		row := records[i]
		if len(row) < 2 {
			logger.Warn("short row, skipping", zap.Int("row", i+1))
			continue
		}

		kind, ok := kinds[strings.ToLower(strings.TrimSpace(row[0]))]
		if !ok {
			logger.Warn("unknown kind, skipping", zap.Int("row", i+1), zap.String("kind", row[0]))
			continue
		}
		ref, err := time.Parse(time.RFC3339, strings.TrimSpace(row[1]))
		if err != nil {
			logger.Warn("invalid time, skipping", zap.Int("row", i+1), zap.Error(err))
			continue
		}

		// Searching from a week earlier puts the reference inside the
		// current or next lunation of the snapshot.
		s, err := moonglide.At(ref.Add(-7*24*time.Hour), moonglide.WithLogger(logger))
		if err != nil {
			logger.Warn("snapshot failed", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		q, err := s.Quarters()
		if err != nil {
			logger.Warn("phase search failed", zap.Int("row", i+1), zap.Error(err))
			continue
		}

		ours := q.Time(kind)
		if next := q.Time(kind + 4); absDuration(next.Sub(ref)) < absDuration(ours.Sub(ref)) {
			ours = next
		}
		record(kind, ours, ref)
	}

	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
