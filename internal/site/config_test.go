package site

import (
	"errors"
	"math"
	"testing"
)

func TestValidateLatitudeBounds(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		lat     float64
		wantErr bool
	}{
		{"equator accepted", NorthEast, 0, false},
		{"pole accepted", NorthEast, 90, false},
		{"just above pole rejected", NorthEast, 90.0001, true},
		{"just below equator rejected", NorthEast, -0.0001, true},
		{"southern accepted globally", Global, -45, false},
		{"south pole accepted globally", Global, -90, false},
		{"below south pole rejected", Global, -90.0001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Latitude: tt.lat, Longitude: 75, Radius: 10, Unit: Meters}
			err := c.Validate(tt.bounds)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v does not wrap ErrInvalidInput", err)
			}
		})
	}
}

func TestValidateLongitudeBounds(t *testing.T) {
	tests := []struct {
		bounds  Bounds
		lon     float64
		wantErr bool
	}{
		{NorthEast, 0, false},
		{NorthEast, 180, false},
		{NorthEast, 180.0001, true},
		{NorthEast, -0.0001, true},
		{Global, -75.8167, false},
		{Global, -180.0001, true},
	}

	for _, tt := range tests {
		c := Config{Latitude: 26, Longitude: tt.lon, Radius: 10, Unit: Meters}
		err := c.Validate(tt.bounds)
		if (err != nil) != tt.wantErr {
			t.Errorf("lon=%g: Validate() error = %v, wantErr %v", tt.lon, err, tt.wantErr)
		}
	}
}

func TestValidateRadius(t *testing.T) {
	c := Config{Latitude: 26, Longitude: 75, Radius: 0, Unit: Meters}
	if err := c.Validate(NorthEast); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("radius 0: error = %v, want ErrInvalidInput", err)
	}

	c.Radius = -1
	if err := c.Validate(NorthEast); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("radius -1: error = %v, want ErrInvalidInput", err)
	}

	c.Radius = 0.0001
	if err := c.Validate(NorthEast); err != nil {
		t.Errorf("radius 0.0001: unexpected error = %v", err)
	}
}

func TestValidateNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := Config{Latitude: v, Longitude: 75, Radius: 10, Unit: Meters}
		if err := c.Validate(NorthEast); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("latitude %g: error = %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestResolveAngula(t *testing.T) {
	c := Config{Latitude: 26, Longitude: 75, Radius: 500, Unit: Angula}
	r := c.Resolve()

	if r.Radius != 10.0 {
		t.Errorf("effective radius = %g, want 10.0", r.Radius)
	}
	if r.InputRadius != 500 {
		t.Errorf("input radius = %g, want 500", r.InputRadius)
	}
	if r.Symbol != "m" {
		t.Errorf("symbol = %q, want m", r.Symbol)
	}
}

func TestResolvePassthrough(t *testing.T) {
	for _, unit := range []Unit{Meters, Feet, Centimeters} {
		c := Config{Latitude: 26, Longitude: 75, Radius: 7.5, Unit: unit}
		r := c.Resolve()
		if r.Radius != 7.5 {
			t.Errorf("%s: effective radius = %g, want 7.5", unit, r.Radius)
		}
		if r.Symbol != string(unit) {
			t.Errorf("%s: symbol = %q, want %q", unit, r.Symbol, unit)
		}
	}
}

func TestResolveDefaultUnit(t *testing.T) {
	r := Config{Latitude: 26, Longitude: 75, Radius: 3}.Resolve()
	if r.Unit != Meters {
		t.Errorf("default unit = %q, want meters", r.Unit)
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit("angula"); err != nil || u != Angula {
		t.Errorf("ParseUnit(angula) = %q, %v", u, err)
	}
	if u, err := ParseUnit(""); err != nil || u != Meters {
		t.Errorf("ParseUnit(\"\") = %q, %v, want meters", u, err)
	}
	if _, err := ParseUnit("furlongs"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseUnit(furlongs) error = %v, want ErrInvalidInput", err)
	}
}
