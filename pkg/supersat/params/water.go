package params

import "math"

// Kappa returns the compressibility of liquid water in MPa^-1.
func Kappa(t float64) float64 {
	tc := KelvinToCelsius(t)
	return 0.487 - 0.04368*tc + 0.00007235*tc*tc
}

// DKappaDP returns the pressure derivative of the compressibility of liquid
// water in MPa^-2.
func DKappaDP(t float64) float64 {
	tc := KelvinToCelsius(t)
	return -0.0003805 + 6.639e6*tc - 9.688e8*tc*tc
}

var rhoWCoefficients = [...]float64{
	1864.3535,
	-72.5821489,
	2.5194368,
	-0.049000203,
	5.860253e-4,
	-4.5055151e-6,
	2.2616353e-8,
	-7.3484974e-11,
	1.4862784e-13,
	-1.6984748e-16,
	8.3699379e-20,
}

// RhoWP0 returns the density of liquid water at P0 in kg/m3.
func RhoWP0(t float64) float64 {
	var rho float64
	for i := len(rhoWCoefficients) - 1; i >= 0; i-- {
		rho = rho*t + rhoWCoefficients[i]
	}
	return rho
}

// NuWP0 returns the volume of one water molecule in the liquid at P0, in m3.
func NuWP0(t float64) float64 {
	return MolarMassWater / (Avogadro * RhoWP0(t))
}

// NuIP0 returns the volume of one water molecule in ice at P0, in m3.
func NuIP0(t float64) float64 {
	red := (t - ZeroCelsius) / ZeroCelsius
	return MolarMassWater / (Avogadro * RhoIce) /
		(1 - 0.05294*red - 0.05637*red*red - 0.002913*math.Pow(red, 3))
}
