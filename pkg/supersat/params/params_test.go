package params

import (
	"errors"
	"math"
	"testing"
)

func TestSwToSiAtWaterSaturation(t *testing.T) {
	tests := []struct {
		t   float64
		min float64
		max float64
	}{
		{235, 1.44, 1.46},
		{250, 1.25, 1.26},
		{273, 1.0, 1.003},
	}

	for _, tt := range tests {
		si, err := SwToSi(tt.t, 1)
		if err != nil {
			t.Fatalf("SwToSi(%v, 1) returned error: %v", tt.t, err)
		}
		if si < tt.min || si > tt.max {
			t.Errorf("SwToSi(%v, 1) = %v, expected in [%v, %v]", tt.t, si, tt.min, tt.max)
		}
	}
}

func TestSwSiRoundTrip(t *testing.T) {
	for _, temp := range []float64{235, 242.5, 260, 272} {
		for _, sw := range []float64{0.1, 0.5, 1, 1.3} {
			si, err := SwToSi(temp, sw)
			if err != nil {
				t.Fatalf("SwToSi(%v, %v): %v", temp, sw, err)
			}
			back, err := SiToSw(temp, si)
			if err != nil {
				t.Fatalf("SiToSw(%v, %v): %v", temp, si, err)
			}
			if math.Abs(back-sw)/sw > 1e-12 {
				t.Errorf("SiToSw(SwToSi(%v)) = %v at T=%v", sw, back, temp)
			}
		}
	}
}

func TestSwToSiZeroIsZero(t *testing.T) {
	si, err := SwToSi(250, 0)
	if err != nil {
		t.Fatalf("SwToSi(250, 0) returned error: %v", err)
	}
	if si != 0 {
		t.Errorf("SwToSi(250, 0) = %v, expected 0", si)
	}
}

func TestFrostPointAtIceSaturation(t *testing.T) {
	// At S_i = 1 the frost point equals the air temperature, up to the
	// accuracy of the fit.
	for _, temp := range []float64{235, 245, 255, 265, 273} {
		tf, err := FrostPoint(temp, 1)
		if err != nil {
			t.Fatalf("FrostPoint(%v, 1): %v", temp, err)
		}
		if math.Abs(tf-temp) > 0.5 {
			t.Errorf("FrostPoint(%v, 1) = %v, expected within 0.5 K", temp, tf)
		}
	}
}

func TestFrostPointInverse(t *testing.T) {
	for _, tf := range []float64{200, 235.5, 260, 280} {
		lnP, err := LnPFromFrostPoint(tf)
		if err != nil {
			t.Fatalf("LnPFromFrostPoint(%v): %v", tf, err)
		}
		back, err := FrostPointFromLnP(lnP)
		if err != nil {
			t.Fatalf("FrostPointFromLnP(%v): %v", lnP, err)
		}
		if math.Abs(back-tf) > 1e-9 {
			t.Errorf("FrostPointFromLnP(LnPFromFrostPoint(%v)) = %v", tf, back)
		}
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"FrostPoint zero", func() (float64, error) { return FrostPoint(250, 0) }},
		{"FrostPoint negative", func() (float64, error) { return FrostPoint(250, -1) }},
		{"FrostPoint NaN", func() (float64, error) { return FrostPoint(250, math.NaN()) }},
		{"FrostPointFromLnP pole", func() (float64, error) { return FrostPointFromLnP(frostC) }},
		{"SwToSi negative", func() (float64, error) { return SwToSi(250, -0.1) }},
		{"MeniscusRadius saturated", func() (float64, error) { return MeniscusRadius(250, 1) }},
		{"SwForMeniscusRadius zero", func() (float64, error) { return SwForMeniscusRadius(250, 0) }},
		{"SiForPoreRadius negative", func() (float64, error) { return SiForPoreRadius(250, -1e-9) }},
		{"DewPointSw below Magnus pole", func() (float64, error) { return DewPointSw(250, 20) }},
		{"DewPointSw zero temperature", func() (float64, error) { return DewPointSw(0, 250) }},
		{"FrostPointSi NaN", func() (float64, error) { return FrostPointSi(250, math.NaN()) }},
		{"FrostPointMagnus zero", func() (float64, error) { return FrostPointMagnus(0) }},
		{"FrostPointMagnus infinite", func() (float64, error) { return FrostPointMagnus(math.Inf(1)) }},
	}

	for _, tt := range tests {
		_, err := tt.fn()
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("%s: expected *DomainError, got %v", tt.name, err)
			continue
		}
		if de.Index != -1 {
			t.Errorf("%s: expected untagged index, got %d", tt.name, de.Index)
		}
	}
}

func TestDomainErrorAt(t *testing.T) {
	base := &DomainError{Func: "FrostPoint", Value: -2, Index: -1}
	tagged := base.At(7)
	if tagged.Index != 7 || base.Index != -1 {
		t.Errorf("At(7) = %d, base = %d", tagged.Index, base.Index)
	}
	expected := "FrostPoint: value -2 out of domain at sample 7"
	if tagged.Error() != expected {
		t.Errorf("Error() = %q, expected %q", tagged.Error(), expected)
	}
}

func TestKelvinRadiusRoundTrip(t *testing.T) {
	r := NanometresToMetres(-10)
	sw, err := SwForMeniscusRadius(250, r)
	if err != nil {
		t.Fatalf("SwForMeniscusRadius: %v", err)
	}
	if sw >= 1 || sw < 0.5 {
		t.Errorf("SwForMeniscusRadius(250, -10nm) = %v, expected a subsaturated value", sw)
	}
	back, err := MeniscusRadius(250, sw)
	if err != nil {
		t.Fatalf("MeniscusRadius: %v", err)
	}
	if math.Abs(back-r)/math.Abs(r) > 1e-9 {
		t.Errorf("MeniscusRadius(SwForMeniscusRadius(r)) = %v, expected %v", back, r)
	}
}

func TestPoreRadiusRoundTrip(t *testing.T) {
	r := NanometresToMetres(10)
	si, err := SiForPoreRadius(240, r)
	if err != nil {
		t.Fatalf("SiForPoreRadius: %v", err)
	}
	if si <= 1 {
		t.Errorf("SiForPoreRadius(240, 10nm) = %v, expected supersaturation", si)
	}
	back, err := CriticalPoreRadius(240, si)
	if err != nil {
		t.Fatalf("CriticalPoreRadius: %v", err)
	}
	if math.Abs(back-r)/r > 1e-9 {
		t.Errorf("CriticalPoreRadius(SiForPoreRadius(r)) = %v, expected %v", back, r)
	}
}

func TestSurfaceTensions(t *testing.T) {
	gvw := GammaVW(250)
	if gvw < 0.07 || gvw > 0.09 {
		t.Errorf("GammaVW(250) = %v, expected about 0.079 J/m2", gvw)
	}
	if c := CosThetaIW(250); c <= 0 || c >= 1 {
		t.Errorf("CosThetaIW(250) = %v, expected in (0, 1)", c)
	}
	if rho := RhoWP0(250); rho < 985 || rho > 995 {
		t.Errorf("RhoWP0(250) = %v, expected about 989 kg/m3", rho)
	}
}

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		got      float64
		expected float64
	}{
		{KelvinToCelsius(273.15), 0},
		{CelsiusToKelvin(-20), 253.15},
		{PaToMPa(611.15), 611.15e-6},
		{MPaToPa(0.1), 1e5},
		{NanometresToMetres(5), 5e-9},
	}

	for i, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-12 {
			t.Errorf("case %d: got %v, expected %v", i, tt.got, tt.expected)
		}
	}
}

func TestMagnusAgreesWithMurphyKoop(t *testing.T) {
	// With the dew or frost point at the air temperature the Magnus and
	// Murphy & Koop pressures agree to within one percent.
	for _, temp := range []float64{235, 245, 255, 265, 273} {
		sw, err := DewPointSw(temp, temp)
		if err != nil {
			t.Fatalf("DewPointSw(%v, %v): %v", temp, temp, err)
		}
		if math.Abs(sw-1) > 0.01 {
			t.Errorf("DewPointSw(%v, %v) = %v, expected within 1%% of 1", temp, temp, sw)
		}
		si, err := FrostPointSi(temp, temp)
		if err != nil {
			t.Fatalf("FrostPointSi(%v, %v): %v", temp, temp, err)
		}
		if math.Abs(si-1) > 0.01 {
			t.Errorf("FrostPointSi(%v, %v) = %v, expected within 1%% of 1", temp, temp, si)
		}
	}
}

func TestDewPointSwBelowAirTemperature(t *testing.T) {
	sw, err := DewPointSw(260, 250)
	if err != nil {
		t.Fatalf("DewPointSw(260, 250): %v", err)
	}
	if !(sw > 0 && sw < 1) {
		t.Errorf("DewPointSw(260, 250) = %v, expected subsaturated", sw)
	}
}

func TestFrostPointMagnusInverse(t *testing.T) {
	for _, tf := range []float64{200, 235.5, 250, 273.15, 280} {
		p, err := magnusIcePressure(tf)
		if err != nil {
			t.Fatalf("magnusIcePressure(%v): %v", tf, err)
		}
		back, err := FrostPointMagnus(p)
		if err != nil {
			t.Fatalf("FrostPointMagnus(%v): %v", p, err)
		}
		if math.Abs(back-tf) > 1e-9 {
			t.Errorf("FrostPointMagnus(%v) = %v, expected %v", p, back, tf)
		}
	}

	tf, err := FrostPointMagnus(magnusIceP0)
	if err != nil || math.Abs(tf-ZeroCelsius) > 1e-12 {
		t.Errorf("FrostPointMagnus(%v) = %v, %v, expected %v", magnusIceP0, tf, err, ZeroCelsius)
	}
}
