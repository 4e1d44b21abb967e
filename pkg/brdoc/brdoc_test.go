package brdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"CPF válido", "12345678909", true},
		{"CPF válido formatado", "123.456.789-09", true},
		{"dígito verificador errado", "12345678908", false},
		{"dígitos repetidos", "11111111111", false},
		{"curto demais", "1234567890", false},
		{"vazio", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCPF(tt.cpf))
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"CNPJ válido", "29793949000178", true},
		{"CNPJ válido formatado", "29.793.949/0001-78", true},
		{"dígito verificador errado", "29793949000179", false},
		{"dígitos repetidos", "00000000000000", false},
		{"comprimento errado", "2979394900017", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCNPJ(tt.cnpj))
		})
	}
}

func TestValidateCEPEPhone(t *testing.T) {
	assert.True(t, ValidateCEP("01310-100"))
	assert.False(t, ValidateCEP("1310100"))

	assert.True(t, ValidatePhone("(11) 98765-4321"))
	assert.True(t, ValidatePhone("1133334444"))
	assert.False(t, ValidatePhone("12345"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))
	assert.Equal(t, "29.793.949/0001-78", FormatCNPJ("29793949000178"))
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "(11) 3333-4444", FormatPhone("1133334444"))

	// Entradas fora do formato esperado não são mutiladas
	assert.Equal(t, "123", FormatCPF("123"))
	assert.Equal(t, "abc", FormatPhone("abc"))
}

func TestValidateValorTransacao(t *testing.T) {
	assert.True(t, ValidateValorTransacao(0.01))
	assert.True(t, ValidateValorTransacao(1e9))
	assert.False(t, ValidateValorTransacao(0))
	assert.False(t, ValidateValorTransacao(-10))
	assert.False(t, ValidateValorTransacao(1e9+1))
}
