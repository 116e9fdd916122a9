package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/thurmanmarka/moonglide"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(20)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func row(w io.Writer, label, value string) {
	fmt.Fprintln(w, "  "+labelStyle.Render(label)+valueStyle.Render(value))
}

func printPhase(w io.Writer, s *moonglide.Snapshot, loc *time.Location) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Moon at %s (%s)", s.Time().In(loc).Format(time.RFC3339), loc)))
	row(w, "Name", nameStyle.Render(s.PhaseName()))
	row(w, "Phase", fmt.Sprintf("%.4f", s.Phase()))
	row(w, "Illuminated", fmt.Sprintf("%.1f%%", s.Illumination()*100))
	row(w, "Age", fmt.Sprintf("%.2f days", s.Age()))
	row(w, "Elongation", fmt.Sprintf("%.2f°", s.Elongation().Deg()))
	if s.Waxing() {
		row(w, "Trend", "Waxing (illumination increasing)")
	} else {
		row(w, "Trend", "Waning (illumination decreasing)")
	}
	row(w, "Distance", fmt.Sprintf("%.0f km", s.Distance()))
	row(w, "Diameter", fmt.Sprintf("%.4f°", s.Diameter()))
	row(w, "Sun distance", fmt.Sprintf("%.0f km", s.SunDistance()))
	row(w, "Sun diameter", fmt.Sprintf("%.4f°", s.SunDiameter()))
}

var quarterLabels = map[moonglide.QuarterKind]string{
	moonglide.NewMoon:          "New moon",
	moonglide.FirstQuarter:     "First quarter",
	moonglide.FullMoon:         "Full moon",
	moonglide.LastQuarter:      "Last quarter",
	moonglide.NextNewMoon:      "Next new moon",
	moonglide.NextFirstQuarter: "Next first quarter",
	moonglide.NextFullMoon:     "Next full moon",
	moonglide.NextLastQuarter:  "Next last quarter",
}

func printQuarters(w io.Writer, s *moonglide.Snapshot, q moonglide.Quarters, loc *time.Location) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Phases around %s (%s)", s.Time().In(loc).Format(time.RFC3339), loc)))
	for _, k := range moonglide.QuarterKinds() {
		row(w, quarterLabels[k], q.Time(k).In(loc).Format("Mon 2006-01-02 15:04:05 MST"))
	}
}

func printSeries(w io.Writer, snaps []*moonglide.Snapshot, loc *time.Location) {
	header := fmt.Sprintf("%-25s %-16s %7s %7s %9s", "Time", "Name", "Phase", "Lit", "Age")
	fmt.Fprintln(w, titleStyle.Render(header))
	for _, s := range snaps {
		fmt.Fprintf(w, "%-25s %-16s %7.4f %6.1f%% %6.2f d\n",
			s.Time().In(loc).Format(time.RFC3339), s.PhaseName(), s.Phase(), s.Illumination()*100, s.Age())
	}
}

type phaseJSON struct {
	Time           time.Time `json:"time"`
	Epoch          int64     `json:"epoch"`
	Name           string    `json:"name"`
	Phase          float64   `json:"phase"`
	Illumination   float64   `json:"illumination"`
	AgeDays        float64   `json:"age_days"`
	Waxing         bool      `json:"waxing"`
	DistanceKm     float64   `json:"distance_km"`
	DiameterDeg    float64   `json:"diameter_deg"`
	SunDistanceKm  float64   `json:"sun_distance_km"`
	SunDiameterDeg float64   `json:"sun_diameter_deg"`
	ElongationDeg  float64   `json:"elongation_deg"`
	Timezone       string    `json:"timezone"`
}

func newPhaseJSON(s *moonglide.Snapshot, loc *time.Location) phaseJSON {
	return phaseJSON{
		Time:           s.Time().In(loc),
		Epoch:          s.EpochSeconds(),
		Name:           s.PhaseName(),
		Phase:          s.Phase(),
		Illumination:   s.Illumination(),
		AgeDays:        s.Age(),
		Waxing:         s.Waxing(),
		DistanceKm:     s.Distance(),
		DiameterDeg:    s.Diameter(),
		SunDistanceKm:  s.SunDistance(),
		SunDiameterDeg: s.SunDiameter(),
		ElongationDeg:  s.Elongation().Deg(),
		Timezone:       loc.String(),
	}
}

type quarterJSON struct {
	Kind string    `json:"kind"`
	Unix float64   `json:"unix"`
	Time time.Time `json:"time"`
}

type quartersJSON struct {
	Time     time.Time     `json:"time"`
	Epoch    int64         `json:"epoch"`
	Quarters []quarterJSON `json:"quarters"`
	Timezone string        `json:"timezone"`
}

func newQuartersJSON(s *moonglide.Snapshot, q moonglide.Quarters, loc *time.Location) quartersJSON {
	out := quartersJSON{
		Time:     s.Time().In(loc),
		Epoch:    s.EpochSeconds(),
		Timezone: loc.String(),
	}
	for _, k := range moonglide.QuarterKinds() {
		out.Quarters = append(out.Quarters, quarterJSON{
			Kind: k.String(),
			Unix: q[k],
			Time: q.Time(k).In(loc),
		})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
