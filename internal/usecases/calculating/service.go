// Package calculating deriva os totais agregados de um dia de movimento a
// partir dos livros de entradas e saídas. O cálculo é uma redução pura do
// estado atual: não há histórico nem estado incremental, e o resultado pode
// ser recomputado a cada mudança.
package calculating

import (
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/pkg/money"
)

// Totais agrupa todos os valores derivados de um dia de movimento.
type Totais struct {
	TotalTaxas              float64 `json:"totalTaxas"`
	TotalOutrosLancamentos  float64 `json:"totalOutrosLancamentos"`
	TotalBrindesLancamentos float64 `json:"totalBrindesLancamentos"`
	TotalVRLancamentos      float64 `json:"totalVRLancamentos"`
	TotalVALancamentos      float64 `json:"totalVALancamentos"`
	TotalEntradas           float64 `json:"totalEntradas"`
	TotalCheques            float64 `json:"totalCheques"`
	TotalDevolucoes         float64 `json:"totalDevolucoes"`
	TotalEnviosCorreios     float64 `json:"totalEnviosCorreios"`
	TotalValesFuncionarios  float64 `json:"totalValesFuncionarios"`
	ValesImpactoEntrada     float64 `json:"valesImpactoEntrada"`
	TotalSaidasRetiradas    float64 `json:"totalSaidasRetiradas"`
	TotalFinal              float64 `json:"totalFinal"`
}

func somaTaxas(taxas []domain.Taxa) float64 {
	total := 0.0
	for _, t := range taxas {
		total = money.Add(total, t.Valor)
	}
	return total
}

func somaLancamentos(lancamentos []domain.Lancamento) float64 {
	total := 0.0
	for _, l := range lancamentos {
		total = money.Add(total, l.Valor)
	}
	return total
}

func somaVales(lancamentos []domain.ValeLancamento) float64 {
	total := 0.0
	for _, l := range lancamentos {
		total = money.Add(total, l.Valor)
	}
	return total
}

func somaCheques(cheques []domain.Cheque) float64 {
	total := 0.0
	for _, c := range cheques {
		total = money.Add(total, c.Valor)
	}
	return total
}

func somaDevolucoesIncluidas(devolucoes []domain.Devolucao) float64 {
	total := 0.0
	for _, d := range devolucoes {
		if d.IncluidoNoMovimento {
			total = money.Add(total, d.Valor)
		}
	}
	return total
}

func somaEnviosIncluidos(envios []domain.Envio) float64 {
	total := 0.0
	for _, e := range envios {
		if e.IncluidoNoMovimento {
			total = money.Add(total, e.Valor)
		}
	}
	return total
}

func somaValesFuncionarios(vales []domain.ValeFuncionario) float64 {
	total := 0.0
	for _, v := range vales {
		total = money.Add(total, v.Valor)
	}
	return total
}

func somaSaidasIncluidas(saidas []domain.SaidaRetirada) float64 {
	total := 0.0
	for _, s := range saidas {
		if s.IncluidoNoMovimento {
			total = money.Add(total, s.Valor)
		}
	}
	return total
}

// Calculate computa os totais do dia na ordem de dependência: primeiro os
// sub-livros, depois o total de entradas, por fim o saldo do movimento.
func Calculate(entradas domain.Entradas, saidas domain.Saidas) Totais {
	t := Totais{
		TotalTaxas:              somaTaxas(entradas.Taxas),
		TotalOutrosLancamentos:  somaLancamentos(entradas.OutrosLancamentos),
		TotalBrindesLancamentos: somaLancamentos(entradas.BrindesLancamentos),
		TotalVRLancamentos:      somaVales(entradas.VRLancamentos),
		TotalVALancamentos:      somaVales(entradas.VALancamentos),
		TotalCheques:            somaCheques(entradas.Cheques),
		TotalDevolucoes:         somaDevolucoesIncluidas(saidas.Devolucoes),
		TotalEnviosCorreios:     somaEnviosIncluidos(saidas.EnviosCorreios),
		TotalValesFuncionarios:  somaValesFuncionarios(saidas.ValesFuncionarios),
		TotalSaidasRetiradas:    somaSaidasIncluidas(saidas.SaidasRetiradas),
	}

	// Outros e brindes: o total itemizado prevalece sobre o escalar digitado
	// manualmente quando positivo; nunca os dois ao mesmo tempo.
	outrosValor := entradas.Outros
	if t.TotalOutrosLancamentos > 0 {
		outrosValor = t.TotalOutrosLancamentos
	}
	brindesValor := entradas.Brindes
	if t.TotalBrindesLancamentos > 0 {
		brindesValor = t.TotalBrindesLancamentos
	}

	t.TotalEntradas = money.Add(
		entradas.Dinheiro,
		entradas.FundoCaixa,
		entradas.Cartao,
		entradas.CartaoLink,
		entradas.Boletos,
		entradas.PixMaquininha,
		entradas.PixConta,
		outrosValor,
		brindesValor,
		entradas.Crediario,
		entradas.CartaoPresente,
		entradas.CashBack,
		t.TotalTaxas,
		t.TotalVRLancamentos,
		t.TotalVALancamentos,
	)

	// Os vales de funcionários só entram no movimento quando a flag de grupo
	// está ligada; as demais listas decidem item a item.
	if saidas.ValesIncluidosNoMovimento {
		t.ValesImpactoEntrada = t.TotalValesFuncionarios
	}

	// Envios de correios somam no saldo, mesmo sendo custo. O comportamento
	// reproduz o fechamento de caixa original, em que o valor do frete cobrado
	// do cliente transita pelo caixa.
	entradasComAdicionais := money.Add(
		t.TotalEntradas,
		t.TotalCheques,
		t.TotalDevolucoes,
		t.TotalEnviosCorreios,
		t.ValesImpactoEntrada,
	)
	t.TotalFinal = money.Subtract(entradasComAdicionais, t.TotalSaidasRetiradas)

	return t
}
