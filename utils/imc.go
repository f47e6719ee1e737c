package utils

import "errors"

// CalcularIMC expects height in centimeters and weight in kilograms.
func CalcularIMC(alturaCm, pesoKg float64) (float64, error) {
	if alturaCm <= 0 || pesoKg <= 0 {
		return 0, errors.New("altura y peso deben ser positivos")
	}
	// Sanity checks to avoid garbage input
	if alturaCm < 50 || alturaCm > 250 || pesoKg < 10 || pesoKg > 400 {
		return 0, errors.New("altura/peso fuera de rango plausible")
	}

	m := alturaCm / 100.0
	return pesoKg / (m * m), nil
}

func CategoriaIMC(imc float64) string {
	switch {
	case imc < 18.5:
		return "Bajo peso"
	case imc < 25.0:
		return "Peso normal"
	case imc < 30.0:
		return "Sobrepeso"
	case imc < 35.0:
		return "Obesidad grado I"
	case imc < 40.0:
		return "Obesidad grado II"
	default:
		return "Obesidad grado III"
	}
}
