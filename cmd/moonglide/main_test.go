package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("moonglide %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestPhaseJSON(t *testing.T) {
	out := execute(t, "phase", "--time", "2021-01-01", "--json")

	var got phaseJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.Epoch != 1609459200 {
		t.Errorf("epoch = %d", got.Epoch)
	}
	if got.Name != "Full Moon" {
		t.Errorf("name = %q, want Full Moon", got.Name)
	}
	if got.Waxing {
		t.Errorf("waxing = true two days after full moon")
	}
	if got.Timezone != "UTC" {
		t.Errorf("timezone = %q", got.Timezone)
	}
}

func TestQuartersJSON(t *testing.T) {
	out := execute(t, "quarters", "--time", "2021-01-01", "--json")

	var got quartersJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got.Quarters) != 8 {
		t.Fatalf("got %d quarters, want 8", len(got.Quarters))
	}
	if got.Quarters[0].Kind != "new_moon" {
		t.Errorf("first kind = %q", got.Quarters[0].Kind)
	}
	if u := got.Quarters[0].Unix; u < 1607962725 || u > 1607962726 {
		t.Errorf("new moon at %f", u)
	}
	for i := 1; i < len(got.Quarters); i++ {
		if !got.Quarters[i].Time.After(got.Quarters[i-1].Time) {
			t.Errorf("quarter %d not after %d", i, i-1)
		}
	}
}

func TestSeriesJSON(t *testing.T) {
	out := execute(t, "series", "--time", "2021-01-01", "--end", "2021-01-08", "--step", "24h", "--json")

	var got []phaseJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 8 {
		t.Fatalf("got %d rows, want 8", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Epoch-got[i-1].Epoch != 86400 {
			t.Errorf("row %d: step %d", i, got[i].Epoch-got[i-1].Epoch)
		}
		// Waning after full moon.
		if got[i].Illumination >= got[i-1].Illumination {
			t.Errorf("row %d: illumination %v not below %v", i, got[i].Illumination, got[i-1].Illumination)
		}
	}
}

func TestHumanOutput(t *testing.T) {
	out := execute(t, "--time", "2021-01-01T00:00:00Z")
	if !strings.Contains(out, "Full Moon") {
		t.Errorf("phase output missing name:\n%s", out)
	}

	out = execute(t, "quarters", "--time", "2021-01-01")
	if !strings.Contains(out, "2020-12-14") {
		t.Errorf("quarters output missing new moon date:\n%s", out)
	}
}

func TestBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--time", "tomorrow-ish"},
		{"--tz", "Nowhere/Special"},
		{"series", "--time", "2021-01-01", "--step", "0s"},
	} {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("moonglide %s: no error", strings.Join(args, " "))
		}
	}
}
