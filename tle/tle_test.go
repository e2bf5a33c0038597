package tle

import (
	"math"
	"testing"
)

const (
	terraLine1 = "1 25994U 99068A   18196.75093423 -.00000025  00000-0  45345-5 0  9993"
	terraLine2 = "2 25994  98.2051 271.2050 0001021  68.8940 291.2371 14.57112414987988"
)

func TestParseTERRA(t *testing.T) {
	got, err := Parse("TERRA", terraLine1, terraLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got.NoradNumber != "25994" {
		t.Errorf("NoradNumber = %q, want 25994", got.NoradNumber)
	}
	if diff := math.Abs(got.Eccentricity - 0.0001021); diff > 1e-9 {
		t.Errorf("Eccentricity = %v, want 0.0001021 (diff %v)", got.Eccentricity, diff)
	}
	if diff := math.Abs(got.InclinationDeg - 98.2051); diff > 1e-6 {
		t.Errorf("InclinationDeg = %v, want 98.2051", got.InclinationDeg)
	}
	if diff := math.Abs(got.MeanMotion - 14.57112414); diff > 1e-6 {
		t.Errorf("MeanMotion = %v, want 14.57112414", got.MeanMotion)
	}
	if diff := math.Abs(got.BStar - 4.5345e-6); diff > 1e-9 {
		t.Errorf("BStar = %v, want 4.5345e-6", got.BStar)
	}
	if got.EpochYear != 18 {
		t.Errorf("EpochYear = %d, want 18", got.EpochYear)
	}
	if diff := math.Abs(got.EpochDay - 196.75093423); diff > 1e-6 {
		t.Errorf("EpochDay = %v, want 196.75093423", got.EpochDay)
	}

	epoch, err := got.EpochJulian()
	if err != nil {
		t.Fatalf("EpochJulian: %v", err)
	}
	if diff := math.Abs(epoch.JD() - 2458315.25093423); diff > 1e-4 {
		t.Errorf("EpochJulian = %v, want ~2458315.25093423 (diff %v)", epoch.JD(), diff)
	}
}

func TestEpochYearFullRollover(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{0, 2000},
		{56, 2056},
		{57, 1957},
		{99, 1999},
	}
	for _, c := range cases {
		got := (&TLE{EpochYear: c.year}).EpochYearFull()
		if got != c.want {
			t.Errorf("EpochYearFull(%d) = %d, want %d", c.year, got, c.want)
		}
	}
}

func TestParseExp(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{" 12345-3", 0.00012345},
		{"-23429-5", -0.0000023429},
		{" 40436+1", 4.0436},
		{" 00000 0", 0.0},
	}
	for _, c := range cases {
		got, err := parseExp(c.in)
		if err != nil {
			t.Fatalf("parseExp(%q): %v", c.in, err)
		}
		if diff := math.Abs(got - c.want); diff > 1e-12 {
			t.Errorf("parseExp(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUnimplementedStubs(t *testing.T) {
	if _, err := IsValidFormat("", 0); err != ErrUnimplemented {
		t.Errorf("IsValidFormat error = %v, want ErrUnimplemented", err)
	}
	if _, err := ValidateChecksum(""); err != ErrUnimplemented {
		t.Errorf("ValidateChecksum error = %v, want ErrUnimplemented", err)
	}
}
