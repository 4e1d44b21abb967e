package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
)

func TestCalculateDiaVazio(t *testing.T) {
	totais := Calculate(domain.NewEntradas(0), domain.NewSaidas())

	assert.Equal(t, 0.0, totais.TotalEntradas)
	assert.Equal(t, 0.0, totais.TotalFinal)
}

func TestCalculateFimAFim(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.Dinheiro = 500
	entradas.Cartao = 300
	entradas.AdicionarCheque(domain.Cheque{Nome: "Cliente A", Valor: 100})

	saidas := domain.NewSaidas()
	saidas.AdicionarSaidaRetirada(domain.SaidaRetirada{
		Descricao:           "Sangria",
		Valor:               50,
		IncluidoNoMovimento: true,
	})

	totais := Calculate(entradas, saidas)

	assert.Equal(t, 800.0, totais.TotalEntradas)
	assert.Equal(t, 100.0, totais.TotalCheques)
	assert.Equal(t, 50.0, totais.TotalSaidasRetiradas)
	// 800 + 100 + 0 + 0 + 0 - 50
	assert.Equal(t, 850.0, totais.TotalFinal)
}

func TestCalculateFundoCaixaEntraNoTotal(t *testing.T) {
	entradas := domain.NewEntradas(400)
	entradas.Dinheiro = 100

	totais := Calculate(entradas, domain.NewSaidas())

	assert.Equal(t, 500.0, totais.TotalEntradas)
}

func TestCalculateOutrosItemizadoPrevalece(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.Outros = 80 // escalar manual, deve ser ignorado

	entradas.OutrosLancamentos = []domain.Lancamento{
		{Descricao: "Ajuste", Valor: 30},
		{Descricao: "Sobra", Valor: 20},
	}

	totais := Calculate(entradas, domain.NewSaidas())

	assert.Equal(t, 50.0, totais.TotalOutrosLancamentos)
	assert.Equal(t, 50.0, totais.TotalEntradas)
}

func TestCalculateOutrosManualQuandoSemItens(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.Outros = 80

	totais := Calculate(entradas, domain.NewSaidas())

	assert.Equal(t, 0.0, totais.TotalOutrosLancamentos)
	assert.Equal(t, 80.0, totais.TotalEntradas)
}

func TestCalculateBrindesItemizadoPrevalece(t *testing.T) {
	entradas := domain.NewEntradas(0)
	entradas.Brindes = 15
	entradas.AdicionarBrindeLancamento("Caneca", 10)

	totais := Calculate(entradas, domain.NewSaidas())

	// AdicionarBrindeLancamento soma ao escalar, mas o total usa o itemizado
	assert.Equal(t, 10.0, totais.TotalBrindesLancamentos)
	assert.Equal(t, 10.0, totais.TotalEntradas)
}

func TestCalculateFlagsPorItem(t *testing.T) {
	saidas := domain.NewSaidas()
	saidas.Devolucoes = []domain.Devolucao{
		{Valor: 40, IncluidoNoMovimento: true},
		{Valor: 999, IncluidoNoMovimento: false},
	}
	saidas.EnviosCorreios = []domain.Envio{
		{Valor: 25.50, IncluidoNoMovimento: true},
		{Valor: 12, IncluidoNoMovimento: false},
	}
	saidas.SaidasRetiradas = []domain.SaidaRetirada{
		{Valor: 30, IncluidoNoMovimento: true},
		{Valor: 70, IncluidoNoMovimento: false},
	}

	totais := Calculate(domain.NewEntradas(0), saidas)

	assert.Equal(t, 40.0, totais.TotalDevolucoes)
	assert.Equal(t, 25.50, totais.TotalEnviosCorreios)
	assert.Equal(t, 30.0, totais.TotalSaidasRetiradas)
	// devoluções e envios somam; retiradas subtraem
	assert.Equal(t, 35.50, totais.TotalFinal)
}

func TestCalculateValesFlagDeGrupo(t *testing.T) {
	saidas := domain.NewSaidas()
	saidas.ValesFuncionarios = []domain.ValeFuncionario{
		{Nome: "Maria", Valor: 60},
		{Nome: "João", Valor: 40},
	}

	desligado := Calculate(domain.NewEntradas(0), saidas)
	assert.Equal(t, 100.0, desligado.TotalValesFuncionarios)
	assert.Equal(t, 0.0, desligado.ValesImpactoEntrada)
	assert.Equal(t, 0.0, desligado.TotalFinal)

	saidas.ValesIncluidosNoMovimento = true
	ligado := Calculate(domain.NewEntradas(0), saidas)
	assert.Equal(t, 100.0, ligado.ValesImpactoEntrada)
	assert.Equal(t, 100.0, ligado.TotalFinal)
}

func TestCalculatePrecisaoDeCentavos(t *testing.T) {
	entradas := domain.NewEntradas(0)
	for i := 0; i < 10; i++ {
		entradas.Taxas = append(entradas.Taxas, domain.Taxa{Valor: 0.1})
	}

	totais := Calculate(entradas, domain.NewSaidas())

	assert.Equal(t, 1.0, totais.TotalTaxas)
	assert.Equal(t, 1.0, totais.TotalEntradas)
}

func TestCalculateTransportadoraNaoEntraNoSaldo(t *testing.T) {
	saidas := domain.NewSaidas()
	saidas.EnviosTransportadora = []domain.Envio{{Valor: 200, IncluidoNoMovimento: true}}

	totais := Calculate(domain.NewEntradas(0), saidas)

	assert.Equal(t, 0.0, totais.TotalFinal)
}
