package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
)

func TestValidatePixConta(t *testing.T) {
	tests := []struct {
		name     string
		pixConta float64
		clientes []domain.ClienteValor
		valid    bool
	}{
		{
			name:     "nada a conferir quando zerado",
			pixConta: 0,
			clientes: nil,
			valid:    true,
		},
		{
			name:     "itemização confere",
			pixConta: 150.00,
			clientes: []domain.ClienteValor{{Nome: "Ana", Valor: 100}, {Nome: "Bia", Valor: 50}},
			valid:    true,
		},
		{
			name:     "itemização com um centavo a menos",
			pixConta: 150.00,
			clientes: []domain.ClienteValor{{Nome: "Ana", Valor: 100}, {Nome: "Bia", Valor: 49.99}},
			valid:    false,
		},
		{
			name:     "agregado positivo sem itemização",
			pixConta: 150.00,
			clientes: nil,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entradas := domain.NewEntradas(0)
			entradas.PixConta = tt.pixConta
			entradas.PixContaClientes = tt.clientes

			assert.Equal(t, tt.valid, ValidatePixConta(entradas))
		})
	}
}

func TestValidateSaidaComItemizacao(t *testing.T) {
	saidas := domain.NewSaidas()
	saidas.Saida = 200
	saidas.SaidasRetiradas = []domain.SaidaRetirada{
		{Valor: 120, IncluidoNoMovimento: true},
		{Valor: 80, IncluidoNoMovimento: false},
	}

	// A conciliação soma todas as retiradas, incluídas no movimento ou não.
	assert.True(t, ValidateSaida(saidas))

	saidas.SaidasRetiradas[1].Valor = 79
	assert.False(t, ValidateSaida(saidas))
}

func TestValidateSaidaFallbackLegado(t *testing.T) {
	saidas := domain.NewSaidas()
	saidas.Saida = 200
	saidas.ValorCompra = 120
	saidas.ValorSaidaDinheiro = 80

	assert.True(t, ValidateSaida(saidas))

	saidas.ValorSaidaDinheiro = 70
	assert.False(t, ValidateSaida(saidas))
}

func TestValidateSaidaZerada(t *testing.T) {
	assert.True(t, ValidateSaida(domain.NewSaidas()))
}

func TestValidateCashBackPrecisaoDeCentavos(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.CashBack = 0.3
	entradas.CashBackClientes = []domain.CashBackCliente{
		{Nome: "Ana", CPF: "12345678909", Valor: 0.1},
		{Nome: "Bia", CPF: "98765432100", Valor: 0.2},
	}

	// 0.1+0.2 difere de 0.3 em float64 puro; na resolução de centavos confere.
	assert.True(t, ValidateCashBack(entradas))
}

func TestCamposInvalidos(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.PixConta = 100
	entradas.Crediario = 50
	entradas.CrediarioClientes = []domain.ClienteParcelado{{Nome: "Ana", Valor: 50, Parcelas: 2}}

	saidas := domain.NewSaidas()
	saidas.Saida = 30

	campos := CamposInvalidos(entradas, saidas)

	assert.Equal(t, []string{CampoSaida, CampoPixConta}, campos)
	assert.False(t, CanSave(entradas, saidas))
}

func TestCanSaveDiaConsistente(t *testing.T) {
	entradas := domain.NewEntradas(400)
	entradas.Dinheiro = 500
	entradas.CartaoLink = 90
	entradas.CartaoLinkClientes = []domain.ClienteParcelado{
		{Nome: "Ana", Valor: 60, Parcelas: 3},
		{Nome: "Bia", Valor: 30, Parcelas: 1},
	}

	assert.True(t, CanSave(entradas, domain.NewSaidas()))
}
