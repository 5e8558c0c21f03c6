package cnpj

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo de los dígitos de verificación del CNPJ (módulo 11).
// Se aplican de izquierda a derecha sobre los 12 y 13 primeros dígitos.
var (
	firstDigitWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondDigitWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize elimina puntuación y devuelve solo los dígitos del CNPJ.
// "47.960.950/0001-21" -> "47960950000121".
func Normalize(s string) string {
	out := make([]byte, 0, 14)
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Validate verifica longitud y dígitos de verificación de un CNPJ (con o sin
// puntuación). Secuencias de un mismo dígito ("00000000000000") pasan el
// módulo 11 pero no son CNPJs emitidos, por lo que se rechazan.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != 14 {
		return fmt.Errorf("cnpj: se esperan 14 dígitos, se encontraron %d", len(digits))
	}
	if allSameDigit(digits) {
		return fmt.Errorf("cnpj: secuencia repetida no es un CNPJ válido")
	}
	if digits[12] != computeDigit(digits, firstDigitWeights[:]) {
		return fmt.Errorf("cnpj: primer dígito de verificación inválido")
	}
	if digits[13] != computeDigit(digits, secondDigitWeights[:]) {
		return fmt.Errorf("cnpj: segundo dígito de verificación inválido")
	}
	return nil
}

func computeDigit(digits string, weights []int) byte {
	var sum int
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
