// Package brdoc valida e formata documentos e dados cadastrais brasileiros
// (CPF, CNPJ, CEP e telefone).
package brdoc

import (
	"fmt"
	"strings"
)

// OnlyDigits remove tudo que não for dígito da string informada.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF verifica os dois dígitos verificadores do CPF (módulo 11).
// Sequências de um único dígito repetido são rejeitadas mesmo quando o
// checksum bate.
func ValidateCPF(cpf string) bool {
	c := OnlyDigits(cpf)
	if len(c) != 11 || allSameDigit(c) {
		return false
	}

	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(c[i-1]-'0') * (11 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	if remainder != int(c[9]-'0') {
		return false
	}

	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(c[i-1]-'0') * (12 - i)
	}
	remainder = (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}

	return remainder == int(c[10]-'0')
}

// ValidateCNPJ verifica os dois dígitos verificadores do CNPJ.
func ValidateCNPJ(cnpj string) bool {
	c := OnlyDigits(cnpj)
	if len(c) != 14 || allSameDigit(c) {
		return false
	}

	if cnpjCheckDigit(c, 12) != int(c[12]-'0') {
		return false
	}

	return cnpjCheckDigit(c, 13) != -1 && cnpjCheckDigit(c, 13) == int(c[13]-'0')
}

// cnpjCheckDigit calcula o dígito verificador sobre os primeiros length
// dígitos, com pesos decrescentes de pos a 2 reiniciando em 9.
func cnpjCheckDigit(c string, length int) int {
	sum := 0
	pos := length - 7
	for i := length; i >= 1; i-- {
		sum += int(c[length-i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// ValidateCEP aceita qualquer CEP com oito dígitos.
func ValidateCEP(cep string) bool {
	return len(OnlyDigits(cep)) == 8
}

// ValidatePhone aceita telefones fixos (10 dígitos) e celulares (11 dígitos).
func ValidatePhone(phone string) bool {
	n := len(OnlyDigits(phone))
	return n == 10 || n == 11
}

// FormatCPF formata como 000.000.000-00. Entradas fora do tamanho esperado
// são devolvidas apenas com os dígitos.
func FormatCPF(cpf string) string {
	c := OnlyDigits(cpf)
	if len(c) != 11 {
		return c
	}
	return fmt.Sprintf("%s.%s.%s-%s", c[0:3], c[3:6], c[6:9], c[9:])
}

// FormatCNPJ formata como 00.000.000/0000-00.
func FormatCNPJ(cnpj string) string {
	c := OnlyDigits(cnpj)
	if len(c) != 14 {
		return c
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", c[0:2], c[2:5], c[5:8], c[8:12], c[12:])
}

// FormatCEP formata como 00000-000.
func FormatCEP(cep string) string {
	c := OnlyDigits(cep)
	if len(c) != 8 {
		return c
	}
	return fmt.Sprintf("%s-%s", c[0:5], c[5:])
}

// ValidateValorTransacao aceita valores monetários positivos até o teto
// de um bilhão de reais.
func ValidateValorTransacao(v float64) bool {
	return v > 0 && v <= 1e9
}

// FormatPhone formata como (00) 0000-0000 ou (00) 00000-0000.
// Entradas de outros tamanhos são devolvidas como recebidas.
func FormatPhone(phone string) string {
	c := OnlyDigits(phone)
	switch len(c) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", c[0:2], c[2:6], c[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", c[0:2], c[2:7], c[7:])
	default:
		return phone
	}
}
