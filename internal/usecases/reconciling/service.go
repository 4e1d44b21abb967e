// Package reconciling confere os campos agregados do movimento contra seus
// sub-livros itemizados antes de permitir a gravação do dia.
//
// A regra geral de cada par (agregado, sub-livro): agregado sem valor não
// exige conferência; agregado positivo sem itemização é inválido; com
// itemização, a soma dos itens deve bater com o agregado na resolução de
// centavos. A exceção é a saída, que aceita os campos legados de
// justificativa única quando a lista itemizada está vazia.
package reconciling

import (
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/pkg/money"
)

// Nomes dos campos reportados quando a conciliação falha.
const (
	CampoSaida          = "saida"
	CampoPixConta       = "pixConta"
	CampoCartaoLink     = "cartaoLink"
	CampoBoletos        = "boletos"
	CampoCrediario      = "crediario"
	CampoCartaoPresente = "cartaoPresente"
	CampoCashBack       = "cashBack"
)

// ValidateSaida confere a saída declarada contra as retiradas itemizadas,
// caindo para os campos legados valorCompra+valorSaidaDinheiro quando não há
// itemização.
func ValidateSaida(saidas domain.Saidas) bool {
	if saidas.Saida <= 0 {
		return true
	}

	totalRetiradas := 0.0
	for _, sr := range saidas.SaidasRetiradas {
		totalRetiradas = money.Add(totalRetiradas, sr.Valor)
	}

	totalJustificativas := totalRetiradas
	if totalRetiradas <= 0 {
		totalJustificativas = money.Add(saidas.ValorCompra, saidas.ValorSaidaDinheiro)
	}

	return money.Equals(totalJustificativas, saidas.Saida)
}

func validaClientes(agregado float64, valores []float64) bool {
	if agregado <= 0 {
		return true
	}
	if len(valores) == 0 {
		// Agregado positivo sem itemização: não há como conferir.
		return false
	}
	total := 0.0
	for _, v := range valores {
		total = money.Add(total, v)
	}
	return money.Equals(total, agregado)
}

func valoresClienteValor(itens []domain.ClienteValor) []float64 {
	valores := make([]float64, len(itens))
	for i, c := range itens {
		valores[i] = c.Valor
	}
	return valores
}

func valoresClienteParcelado(itens []domain.ClienteParcelado) []float64 {
	valores := make([]float64, len(itens))
	for i, c := range itens {
		valores[i] = c.Valor
	}
	return valores
}

// ValidatePixConta confere o PIX conta contra a lista de clientes.
func ValidatePixConta(e domain.Entradas) bool {
	return validaClientes(e.PixConta, valoresClienteValor(e.PixContaClientes))
}

// ValidateCartaoLink confere o cartão link contra a lista de clientes.
func ValidateCartaoLink(e domain.Entradas) bool {
	return validaClientes(e.CartaoLink, valoresClienteParcelado(e.CartaoLinkClientes))
}

// ValidateBoletos confere os boletos contra a lista de clientes.
func ValidateBoletos(e domain.Entradas) bool {
	return validaClientes(e.Boletos, valoresClienteParcelado(e.BoletosClientes))
}

// ValidateCrediario confere o crediário contra a lista de clientes.
func ValidateCrediario(e domain.Entradas) bool {
	return validaClientes(e.Crediario, valoresClienteParcelado(e.CrediarioClientes))
}

// ValidateCartaoPresente confere o cartão presente contra a lista de clientes.
func ValidateCartaoPresente(e domain.Entradas) bool {
	return validaClientes(e.CartaoPresente, valoresClienteValor(e.CartaoPresenteClientes))
}

// ValidateCashBack confere o cashback contra a lista de clientes.
func ValidateCashBack(e domain.Entradas) bool {
	valores := make([]float64, len(e.CashBackClientes))
	for i, c := range e.CashBackClientes {
		valores[i] = c.Valor
	}
	return validaClientes(e.CashBack, valores)
}

// CamposInvalidos retorna os nomes dos campos que não conferem, na ordem em
// que os validadores são avaliados. Lista vazia significa que o dia pode ser
// gravado.
func CamposInvalidos(entradas domain.Entradas, saidas domain.Saidas) []string {
	var campos []string

	if !ValidateSaida(saidas) {
		campos = append(campos, CampoSaida)
	}
	if !ValidatePixConta(entradas) {
		campos = append(campos, CampoPixConta)
	}
	if !ValidateCartaoLink(entradas) {
		campos = append(campos, CampoCartaoLink)
	}
	if !ValidateBoletos(entradas) {
		campos = append(campos, CampoBoletos)
	}
	if !ValidateCrediario(entradas) {
		campos = append(campos, CampoCrediario)
	}
	if !ValidateCartaoPresente(entradas) {
		campos = append(campos, CampoCartaoPresente)
	}
	if !ValidateCashBack(entradas) {
		campos = append(campos, CampoCashBack)
	}

	return campos
}

// CanSave é o E lógico dos sete validadores.
func CanSave(entradas domain.Entradas, saidas domain.Saidas) bool {
	return len(CamposInvalidos(entradas, saidas)) == 0
}
