package cpf

import (
	"fmt"
)

// Valida CPF (Cadastro de Pessoas Físicas) pelo algoritmo módulo 11 da Receita
// Federal: dois dígitos verificadores calculados sobre os 9 e 10 primeiros
// dígitos, com pesos decrescentes 10..2 e 11..2 respectivamente.

// IsValid informa se o CPF (com ou sem pontos/hífen) possui dígitos
// verificadores corretos. CPFs com todos os dígitos iguais ("11111111111")
// são sempre inválidos, apesar de passarem no cálculo.
func IsValid(cpf string) bool {
	return Validate(cpf) == nil
}

// Validate valida o CPF e retorna um erro descritivo quando inválido.
// Aceita "529.982.247-25", "52998224725" etc.
func Validate(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("cpf: deve ter 11 dígitos, foram encontrados %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cpf: sequência de dígitos repetidos não é um CPF válido")
	}
	d1 := checkDigit(digits[:9], 10)
	if digits[9] != d1 {
		return fmt.Errorf("cpf: primeiro dígito verificador inválido: esperado %c, recebido %c", d1, digits[9])
	}
	d2 := checkDigit(digits[:10], 11)
	if digits[10] != d2 {
		return fmt.Errorf("cpf: segundo dígito verificador inválido: esperado %c, recebido %c", d2, digits[10])
	}
	return nil
}

// checkDigit calcula um dígito verificador: soma ponderada com peso inicial
// firstWeight decrescendo até 2, d = 11 - (soma mod 11), e d >= 10 vira 0.
func checkDigit(base []byte, firstWeight int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (firstWeight - i)
	}
	d := 11 - (sum % 11)
	if d >= 10 {
		d = 0
	}
	return byte('0' + d)
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// extractDigits descarta tudo que não for dígito ASCII. Dígitos de outros
// alfabetos (ex.: indo-arábicos) não contam: CPF é um identificador ASCII.
func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}
