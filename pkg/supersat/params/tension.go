package params

import "math"

// GammaVW returns the surface tension of the vapour–water interface in J/m2
// (IAPWS form).
func GammaVW(t float64) float64 {
	const (
		tc = 647.096 // K
		mu = 1.256
		b  = 0.2358 // J/m2
		bb = -0.625
	)
	tau := 1 - t/tc
	return b * math.Pow(tau, mu) * (1 + bb*tau)
}

// GammaIW returns the surface tension of the ice–water interface in J/m2 at
// pressure p given in MPa.
func GammaIW(t, p float64) float64 {
	return 0.03 - 0.18e-3*(273.15-t) +
		4.99e-5*p -
		1.37e-7*math.Pow(p, 2) +
		1.53e-10*math.Pow(p, 3) +
		1.40e-12*math.Pow(p, 4) -
		2.97e-15*math.Pow(p, 5) -
		3.05e-17*math.Pow(p, 6)
}

// GammaVI returns the vapour–ice surface tension in J/m2 at P0
// (Marcolli 2020).
func GammaVI(t float64) float64 {
	return GammaVW(t) + GammaIW(t, P0)
}

// CosThetaIW returns the cosine of the ice–water contact angle.
func CosThetaIW(t float64) float64 {
	return (GammaVW(t) - GammaIW(t, P0)) / GammaVI(t)
}
