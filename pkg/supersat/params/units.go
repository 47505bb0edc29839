package params

// ZeroCelsius is 0 °C expressed in kelvin.
const ZeroCelsius = 273.15

// PaPerMPa is the number of pascal in one megapascal.
const PaPerMPa = 1e6

// MetresPerNanometre converts nanometres to metres.
const MetresPerNanometre = 1e-9

// KelvinToCelsius converts a temperature from K to °C.
func KelvinToCelsius(t float64) float64 {
	return t - ZeroCelsius
}

// CelsiusToKelvin converts a temperature from °C to K.
func CelsiusToKelvin(t float64) float64 {
	return t + ZeroCelsius
}

// PaToMPa converts pascal to megapascal.
func PaToMPa(p float64) float64 {
	return p / PaPerMPa
}

// MPaToPa converts megapascal to pascal.
func MPaToPa(p float64) float64 {
	return p * PaPerMPa
}

// NanometresToMetres converts a length from nm to m.
func NanometresToMetres(nm float64) float64 {
	return nm * MetresPerNanometre
}
