// Command orbittle reads a TLE and a ground site, propagates over a time
// window, and writes either a raw elevation/azimuth ephemeris or a
// rise/culmination/set event log.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/anupshinde/orbittle/config"
	"github.com/anupshinde/orbittle/satellite"
	"github.com/anupshinde/orbittle/site"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbittle",
		Short: "Propagate a TLE and report look angles from a ground site",
		RunE:  run,
	}

	flags := cmd.Flags()
	flags.Float64("lon", 0, "site longitude, degrees east")
	flags.Float64("lat", 0, "site latitude, degrees north")
	flags.Float64("alt", 0, "site altitude, km above WGS-72")
	flags.String("site-name", "site", "site label for verbose/event output")
	flags.String("tle", config.DefaultTLEPath, "path to the 3-line TLE file")
	flags.String("out", config.DefaultOutPath, "ephemeris/event output path")
	flags.String("start", "", "sweep start, YYYY-mm-dd/HH:MM:SS (required)")
	flags.String("end", "", "sweep end, YYYY-mm-dd/HH:MM:SS (required)")
	flags.Int("zone", config.DefaultZoneOffsetHours, "civil zone offset (hours) applied to output timestamps")
	flags.Float64("min-elevation", config.DefaultMinElevationDeg, "minimum elevation, degrees, for raw samples")
	flags.String("step", config.DefaultStep.String(), "simulated sample period, e.g. 1s")
	flags.Bool("events", false, "emit rise/culmination/set events instead of raw samples")
	flags.Bool("verbose", false, "log orbit selection and regime classification")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if cfg.Verbose {
		satellite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sat, err := loadSat(cfg.TLEPath)
	if err != nil {
		return err
	}

	if stale, err := sat.Orbit.TLE.IsStale(cfg.Start, 30*24*time.Hour); err == nil && stale {
		fmt.Fprintf(os.Stderr, "warning: TLE for %s is more than 30 days old as of --start\n", sat.Name)
	}

	observer := site.New(cfg.SiteName, cfg.LatDeg, cfg.LonDeg, cfg.AltKm)
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "orbit regime: %s, period %.2f min\n", sat.Orbit.Regime, sat.Orbit.Period.Minutes())
	}

	out, err := os.Create(cfg.OutPath)
	if err != nil {
		return errors.Wrap(err, "orbittle: creating output file")
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	if cfg.Events {
		return writeEvents(sat, observer, cfg, w)
	}
	return writeSamples(ctx, sat, observer, cfg, w)
}

func loadSat(path string) (satellite.Sat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return satellite.Sat{}, errors.Wrap(err, "orbittle: reading TLE file")
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) < 3 {
		lines = append(lines, "")
	}
	return satellite.NewSat(lines[0], lines[1], lines[2])
}

// writeSamples emits one line per step where elevation clears
// cfg.MinElevationDeg, in the civil zone cfg.ZoneOffsetHours.
func writeSamples(ctx context.Context, sat satellite.Sat, observer site.Site, cfg config.Config, w *bufio.Writer) error {
	loc := time.FixedZone("civil", cfg.ZoneOffsetHours*3600)

	for t := cfg.Start; !t.After(cfg.End); t = t.Add(cfg.Step) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tsince := t.Sub(sat.Orbit.Epoch.ToTime()).Minutes()
		topo, err := observer.LookAngle(sat.Orbit, tsince)
		if err != nil {
			return errors.Wrapf(err, "orbittle: propagating to %s", t)
		}

		elev := topo.ElevationDeg()
		if elev < cfg.MinElevationDeg {
			continue
		}

		fmt.Fprintf(w, "%s %.3f %.3f\n",
			t.In(loc).Format("2006/01/02 15:04:05"), elev, topo.AzimuthDeg())
	}
	return nil
}

// writeEvents runs the rise/culmination/set search over the whole window
// instead of sampling at a fixed step.
func writeEvents(sat satellite.Sat, observer site.Site, cfg config.Config, w *bufio.Writer) error {
	loc := time.FixedZone("civil", cfg.ZoneOffsetHours*3600)

	events, err := satellite.FindEvents(sat, observer, cfg.Start, cfg.End, cfg.MinElevationDeg)
	if err != nil {
		return errors.Wrap(err, "orbittle: searching for events")
	}

	kindName := map[int]string{
		satellite.Rise:        "RISE",
		satellite.Culmination: "CULM",
		satellite.Set:         "SET",
	}

	for _, e := range events {
		fmt.Fprintf(w, "%s %-4s %.3f\n",
			e.Time.In(loc).Format("2006/01/02 15:04:05"), kindName[e.Kind], e.Elevation)
	}
	return nil
}
