package params

import "math"

// Murphy & Koop (2005) frost point fit coefficients, ln p in ln(Pa).
const (
	frostA = 1.514625
	frostB = 6190.134
	frostC = 29.12
)

// LnPIceP0 returns ln of the saturation vapour pressure over hexagonal ice
// in Pa (Murphy & Koop 2005).
func LnPIceP0(t float64) float64 {
	return 9.550426 - 5723.265/t + 3.53068*math.Log(t) - 0.00728332*t
}

// LnPWaterP0 returns ln of the saturation vapour pressure over supercooled
// liquid water in Pa (Murphy & Koop 2005).
func LnPWaterP0(t float64) float64 {
	return 54.842763 - 6763.22/t - 4.21*math.Log(t) + 0.000367*t +
		math.Tanh(0.0415*(t-218.8))*(53.878-1331.22/t-9.44523*math.Log(t)+0.014025*t)
}

// SwToSi converts a saturation ratio with respect to water into the ratio
// with respect to ice at the same temperature and vapour pressure.
func SwToSi(t, sw float64) (float64, error) {
	if sw < 0 || math.IsNaN(sw) {
		return 0, domainErr("SwToSi", sw)
	}
	return sw * math.Exp(LnPWaterP0(t)-LnPIceP0(t)), nil
}

// SiToSw converts a saturation ratio with respect to ice into the ratio with
// respect to water.
func SiToSw(t, si float64) (float64, error) {
	if si < 0 || math.IsNaN(si) {
		return 0, domainErr("SiToSw", si)
	}
	return si * math.Exp(LnPIceP0(t)-LnPWaterP0(t)), nil
}

// SwChangeTemp returns the saturation ratio over water of an air parcel
// moved from oldT to newT at constant vapour pressure.
func SwChangeTemp(newT, oldT, sw float64) (float64, error) {
	if sw < 0 || math.IsNaN(sw) {
		return 0, domainErr("SwChangeTemp", sw)
	}
	return sw * math.Exp(LnPWaterP0(oldT)-LnPWaterP0(newT)), nil
}

// SiToPressure returns the water vapour partial pressure in Pa for a
// saturation ratio over ice.
func SiToPressure(t, si float64) (float64, error) {
	if si < 0 || math.IsNaN(si) {
		return 0, domainErr("SiToPressure", si)
	}
	return si * math.Exp(LnPIceP0(t)), nil
}

// PressureToSi returns the saturation ratio over ice for a vapour partial
// pressure in Pa.
func PressureToSi(t, p float64) (float64, error) {
	if p < 0 || math.IsNaN(p) {
		return 0, domainErr("PressureToSi", p)
	}
	return p / math.Exp(LnPIceP0(t)), nil
}

// FrostPointFromLnP returns the frost point in K for a vapour pressure given
// as ln(Pa).
func FrostPointFromLnP(lnP float64) (float64, error) {
	if !(lnP < frostC) || math.IsInf(lnP, -1) {
		return 0, domainErr("FrostPointFromLnP", lnP)
	}
	return (frostA*lnP + frostB) / (frostC - lnP), nil
}

// LnPFromFrostPoint is the inverse of FrostPointFromLnP.
func LnPFromFrostPoint(tf float64) (float64, error) {
	if !(tf > -frostA) || math.IsInf(tf, 1) {
		return 0, domainErr("LnPFromFrostPoint", tf)
	}
	return (frostC*tf - frostB) / (frostA + tf), nil
}

// FrostPoint returns the frost point in K of air at temperature t with
// saturation ratio si over ice.
func FrostPoint(t, si float64) (float64, error) {
	lnSi, err := logPositive("FrostPoint", si)
	if err != nil {
		return 0, err
	}
	return FrostPointFromLnP(lnSi + LnPIceP0(t))
}

// SiFromFrostPoint returns the saturation ratio over ice at temperature t of
// air whose frost point is tf.
func SiFromFrostPoint(t, tf float64) (float64, error) {
	lnP, err := LnPFromFrostPoint(tf)
	if err != nil {
		return 0, err
	}
	return math.Exp(lnP - LnPIceP0(t)), nil
}

// Magnus coefficients over water (Alduchov & Eskridge 1996 form) and over
// ice, temperatures in °C and pressures in Pa.
const (
	magnusWaterP0 = 611.21
	magnusWaterA  = 17.9662
	magnusWaterB  = 247.15
	magnusIceP0   = 611.15
	magnusIceA    = 22.452
	magnusIceB    = 272.55
)

// DewPointSw returns the saturation ratio over water at temperature t of air
// whose dew point is td, both in K. The dew point pressure comes from the
// Magnus fit.
func DewPointSw(t, td float64) (float64, error) {
	if !(t > 0) || math.IsInf(t, 1) {
		return 0, domainErr("DewPointSw", t)
	}
	c := KelvinToCelsius(td)
	if !(c > -magnusWaterB) || math.IsInf(c, 1) {
		return 0, domainErr("DewPointSw", td)
	}
	return magnusWaterP0 * math.Exp(magnusWaterA*c/(c+magnusWaterB)-LnPWaterP0(t)), nil
}

// FrostPointSi returns the saturation ratio over ice at temperature t of air
// whose frost point is tf, both in K, using the Magnus fit over ice.
func FrostPointSi(t, tf float64) (float64, error) {
	if !(t > 0) || math.IsInf(t, 1) {
		return 0, domainErr("FrostPointSi", t)
	}
	p, err := magnusIcePressure(tf)
	if err != nil {
		return 0, err
	}
	return p / math.Exp(LnPIceP0(t)), nil
}

func magnusIcePressure(tf float64) (float64, error) {
	c := KelvinToCelsius(tf)
	if !(c > -magnusIceB) || math.IsInf(c, 1) {
		return 0, domainErr("FrostPointSi", tf)
	}
	return magnusIceP0 * math.Exp(magnusIceA*c/(c+magnusIceB)), nil
}

// FrostPointMagnus returns the frost point in K for a vapour pressure p in Pa
// by inverting the Magnus fit over ice.
func FrostPointMagnus(p float64) (float64, error) {
	if !(p > 0) {
		return 0, domainErr("FrostPointMagnus", p)
	}
	l := math.Log(p / magnusIceP0)
	if !(l < magnusIceA) {
		return 0, domainErr("FrostPointMagnus", p)
	}
	return CelsiusToKelvin(magnusIceB * l / (magnusIceA - l)), nil
}
