// Package config binds cmd/orbittle's flags, environment variables, and an
// optional orbittle.yaml into a single Config value via Viper, so the three
// sources share one precedence order: flag, then env, then file, then
// default.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved set of values cmd/orbittle needs to run one
// pass/ephemeris sweep.
type Config struct {
	SiteName string
	LatDeg   float64
	LonDeg   float64
	AltKm    float64

	TLEPath string
	OutPath string

	Start time.Time
	End   time.Time

	ZoneOffsetHours int
	MinElevationDeg float64
	Step            time.Duration
	Events          bool
	Verbose         bool
}

// timeLayout matches the CLI's --start/--end format: YYYY-mm-dd/HH:MM:SS.
const timeLayout = "2006-01-02/15:04:05"

// Defaults mirror the distilled driver: UTC+8 civil zone, 3 degree
// elevation cutoff, one-second simulated step, tle.txt/output.eph as
// relative paths, resolved against the working directory rather than the
// executable's directory.
const (
	DefaultZoneOffsetHours = 8
	DefaultMinElevationDeg = 3.0
	DefaultStep            = time.Second
	DefaultTLEPath         = "tle.txt"
	DefaultOutPath         = "output.eph"
)

// Load resolves a Config from bound pflags, ORBITTLE_* environment
// variables, and orbittle.yaml (searched in the working directory), in
// that precedence order.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetConfigName("orbittle")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ORBITTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("zone", DefaultZoneOffsetHours)
	v.SetDefault("min-elevation", DefaultMinElevationDeg)
	v.SetDefault("step", DefaultStep.String())
	v.SetDefault("tle", DefaultTLEPath)
	v.SetDefault("out", DefaultOutPath)

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, errors.Wrap(err, "config: binding flags")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, errors.Wrap(err, "config: reading orbittle.yaml")
		}
	}

	startStr := v.GetString("start")
	endStr := v.GetString("end")
	if startStr == "" || endStr == "" {
		return Config{}, errors.New("config: --start and --end are required")
	}

	start, err := time.Parse(timeLayout, startStr)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: parsing --start")
	}
	end, err := time.Parse(timeLayout, endStr)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: parsing --end")
	}

	step, err := time.ParseDuration(v.GetString("step"))
	if err != nil {
		return Config{}, errors.Wrap(err, "config: parsing --step")
	}

	return Config{
		SiteName:        v.GetString("site-name"),
		LatDeg:          v.GetFloat64("lat"),
		LonDeg:          v.GetFloat64("lon"),
		AltKm:           v.GetFloat64("alt"),
		TLEPath:         v.GetString("tle"),
		OutPath:         v.GetString("out"),
		Start:           start,
		End:             end,
		ZoneOffsetHours: v.GetInt("zone"),
		MinElevationDeg: v.GetFloat64("min-elevation"),
		Step:            step,
		Events:          v.GetBool("events"),
		Verbose:         v.GetBool("verbose"),
	}, nil
}
