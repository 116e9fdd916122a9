package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thurmanmarka/moonglide"
	mglog "github.com/thurmanmarka/moonglide/internal/log"
)

type globalFlags struct {
	timeStr string
	tzName  string
	jsonOut bool
	debug   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "moonglide",
		Short: "Moon phase, age, distance and phase times",
		Long: `moonglide – the Moon at a glance

Without a subcommand it behaves like "moonglide phase".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhase(cmd, gf)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.timeStr, "time", "", "time in RFC3339, 'YYYY-MM-DDTHH:MM', 'YYYY-MM-DD' or Unix seconds (default now)")
	pf.StringVar(&gf.tzName, "tz", "UTC", "IANA time zone for parsing and display (e.g. America/Phoenix)")
	pf.BoolVar(&gf.jsonOut, "json", false, "output result as JSON")
	pf.BoolVar(&gf.debug, "debug", false, "log debug output (including phase search steps) to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "phase",
			Short: "Moon phase, illumination, age and distances at an instant",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPhase(cmd, gf)
			},
		},
		&cobra.Command{
			Use:   "quarters",
			Short: "Times of new, first quarter, full and last quarter moons around an instant",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQuarters(cmd, gf)
			},
		},
		newSeriesCmd(gf),
	)

	return root
}

// setup resolves the shared flags into a logger, a location and an instant.
func setup(gf *globalFlags) (*zap.Logger, *time.Location, time.Time, error) {
	logger := mglog.NewOrNop(gf.debug)

	loc, err := time.LoadLocation(gf.tzName)
	if err != nil {
		return logger, nil, time.Time{}, fmt.Errorf("invalid time zone %q: %w", gf.tzName, err)
	}

	if gf.timeStr == "" {
		return logger, loc, time.Now().In(loc), nil
	}

	t, err := moonglide.ParseTime(gf.timeStr, loc)
	if err != nil {
		return logger, loc, time.Time{}, fmt.Errorf("could not parse --time: %w", err)
	}
	return logger, loc, t.In(loc), nil
}

func runPhase(cmd *cobra.Command, gf *globalFlags) error {
	logger, loc, t, err := setup(gf)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	s, err := moonglide.At(t, moonglide.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("evaluated snapshot", zap.Int64("epoch", s.EpochSeconds()), zap.Float64("phase", s.Phase()))

	if gf.jsonOut {
		return writeJSON(cmd.OutOrStdout(), newPhaseJSON(s, loc))
	}
	printPhase(cmd.OutOrStdout(), s, loc)
	return nil
}

func runQuarters(cmd *cobra.Command, gf *globalFlags) error {
	logger, loc, t, err := setup(gf)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	s, err := moonglide.At(t, moonglide.WithLogger(logger))
	if err != nil {
		return err
	}
	q, err := s.Quarters()
	if err != nil {
		return fmt.Errorf("phase times: %w", err)
	}

	if gf.jsonOut {
		return writeJSON(cmd.OutOrStdout(), newQuartersJSON(s, q, loc))
	}
	printQuarters(cmd.OutOrStdout(), s, q, loc)
	return nil
}

func newSeriesCmd(gf *globalFlags) *cobra.Command {
	var (
		endStr string
		step   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Phase and illumination from --time to --end every --step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, loc, start, err := setup(gf)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			end := start.Add(30 * 24 * time.Hour)
			if endStr != "" {
				end, err = moonglide.ParseTime(endStr, loc)
				if err != nil {
					return fmt.Errorf("could not parse --end: %w", err)
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			snaps, err := moonglide.Series(ctx, start, end, step, moonglide.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Debug("series evaluated", zap.Int("count", len(snaps)))

			if gf.jsonOut {
				out := make([]phaseJSON, len(snaps))
				for i, s := range snaps {
					out[i] = newPhaseJSON(s, loc)
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printSeries(cmd.OutOrStdout(), snaps, loc)
			return nil
		},
	}

	cmd.Flags().StringVar(&endStr, "end", "", "end of the series, same formats as --time (default 30 days after --time)")
	cmd.Flags().DurationVar(&step, "step", 24*time.Hour, "interval between samples")

	return cmd
}
