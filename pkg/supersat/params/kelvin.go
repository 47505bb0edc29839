package params

import "math"

// MeniscusRadius returns the curvature radius in m of a water meniscus in
// equilibrium with vapour at saturation ratio sw (Kelvin equation). The
// radius is negative for concave menisci (sw < 1).
func MeniscusRadius(t, sw float64) (float64, error) {
	lnSw, err := logPositive("MeniscusRadius", sw)
	if err != nil {
		return 0, err
	}
	if lnSw == 0 {
		return 0, domainErr("MeniscusRadius", sw)
	}
	return 2 * GammaVW(t) * NuWP0(t) / (Boltzmann * t * lnSw), nil
}

// SwForMeniscusRadius inverts MeniscusRadius: it returns the saturation
// ratio over water at which a meniscus of radius r is in equilibrium.
func SwForMeniscusRadius(t, r float64) (float64, error) {
	if r == 0 || math.IsNaN(r) {
		return 0, domainErr("SwForMeniscusRadius", r)
	}
	return math.Exp(2 * GammaVW(t) * NuWP0(t) / (Boltzmann * t * r)), nil
}

// CriticalPoreRadius returns the pore radius in m above which ice grows out
// of a cylindrical pore at saturation ratio si over ice.
func CriticalPoreRadius(t, si float64) (float64, error) {
	lnSi, err := logPositive("CriticalPoreRadius", si)
	if err != nil {
		return 0, err
	}
	if lnSi == 0 {
		return 0, domainErr("CriticalPoreRadius", si)
	}
	return 4 * GammaVI(t) * NuIP0(t) * CosThetaIW(t) / (Boltzmann * t * lnSi), nil
}

// SiForPoreRadius inverts CriticalPoreRadius for a positive radius r.
func SiForPoreRadius(t, r float64) (float64, error) {
	if !(r > 0) {
		return 0, domainErr("SiForPoreRadius", r)
	}
	return math.Exp(4 * GammaVI(t) * NuIP0(t) * CosThetaIW(t) / (Boltzmann * t * r)), nil
}
