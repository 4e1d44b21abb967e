package domain

// Item types dos sub-livros do movimento de caixa. Os nomes JSON seguem o
// formato do registro persistido (cashFlowData) para manter compatibilidade
// com os dados já gravados pelos clientes.

// Cheque é um cheque recebido no dia.
type Cheque struct {
	Nome   string  `json:"nome"`
	Valor  float64 `json:"valor"`
	BomPara string `json:"bomPara,omitempty"`
}

// Taxa é uma taxa de maquininha ou similar lançada como entrada.
type Taxa struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// Lancamento é um lançamento avulso com descrição (outros, brindes).
type Lancamento struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// ValeLancamento é um lançamento de vale refeição ou alimentação.
type ValeLancamento struct {
	Descricao string  `json:"descricao,omitempty"`
	Valor     float64 `json:"valor"`
}

// ClienteValor identifica um recebimento por cliente (PIX conta,
// cartão presente).
type ClienteValor struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

// ClienteParcelado identifica um recebimento parcelado por cliente
// (cartão link, boletos, crediário).
type ClienteParcelado struct {
	Nome     string  `json:"nome"`
	Valor    float64 `json:"valor"`
	Parcelas int     `json:"parcelas"`
}

// CashBackCliente registra uso de cashback identificado pelo CPF do cliente.
// O CPF é a chave no saldo de cashback (ver usecases/cashback).
type CashBackCliente struct {
	Nome  string  `json:"nome"`
	CPF   string  `json:"cpf"`
	Valor float64 `json:"valor"`
}

// SaidaRetirada é uma retirada itemizada do caixa. IncluidoNoMovimento
// controla se a retirada entra no cálculo do movimento do dia.
type SaidaRetirada struct {
	Descricao           string  `json:"descricao"`
	Valor               float64 `json:"valor"`
	IncluidoNoMovimento bool    `json:"incluidoNoMovimento"`
}

// Devolucao é uma devolução registrada no dia, também com flag de inclusão
// por item.
type Devolucao struct {
	Descricao           string  `json:"descricao,omitempty"`
	Valor               float64 `json:"valor"`
	IncluidoNoMovimento bool    `json:"incluidoNoMovimento"`
}

// Envio é um custo de envio (correios ou transportadora).
type Envio struct {
	Destinatario        string  `json:"destinatario,omitempty"`
	Valor               float64 `json:"valor"`
	IncluidoNoMovimento bool    `json:"incluidoNoMovimento"`
}

// ValeFuncionario é um vale concedido a funcionário. Diferente das demais
// listas, a inclusão no movimento é decidida pela flag de grupo em Saidas.
type ValeFuncionario struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

// Cancelamento registra um cupom cancelado no dia.
type Cancelamento struct {
	NumeroCupom string  `json:"numeroCupom,omitempty"`
	Valor       float64 `json:"valor"`
	Motivo      string  `json:"motivo,omitempty"`
}

// Entradas é o livro de entradas de um dia de movimento. Os campos escalares
// convivem com sub-livros itemizados; quando o sub-livro correspondente não
// está vazio, a soma dos itens deve conferir com o campo agregado (ver
// usecases/reconciling).
type Entradas struct {
	Dinheiro      float64 `json:"dinheiro"`
	FundoCaixa    float64 `json:"fundoCaixa"`
	Cartao        float64 `json:"cartao"`
	CartaoLink    float64 `json:"cartaoLink"`
	Boletos       float64 `json:"boletos"`
	PixMaquininha float64 `json:"pixMaquininha"`
	PixConta      float64 `json:"pixConta"`
	Crediario     float64 `json:"crediario"`
	CartaoPresente float64 `json:"cartaoPresente"`
	CashBack      float64 `json:"cashBack"`

	Outros          float64 `json:"outros"`
	OutrosDescricao string  `json:"outrosDescricao,omitempty"`
	Brindes          float64 `json:"brindes"`
	BrindesDescricao string  `json:"brindesDescricao,omitempty"`

	ValeRefeicao    float64 `json:"valeRefeicao"`
	ValeAlimentacao float64 `json:"valeAlimentacao"`

	Cheque  float64  `json:"cheque"`
	Cheques []Cheque `json:"cheques"`

	Taxas              []Taxa           `json:"taxas"`
	OutrosLancamentos  []Lancamento     `json:"outrosLancamentos"`
	BrindesLancamentos []Lancamento     `json:"brindesLancamentos"`
	VRLancamentos      []ValeLancamento `json:"vrLancamentos"`
	VALancamentos      []ValeLancamento `json:"vaLancamentos"`

	PixContaClientes       []ClienteValor     `json:"pixContaClientes"`
	CartaoLinkClientes     []ClienteParcelado `json:"cartaoLinkClientes"`
	BoletosClientes        []ClienteParcelado `json:"boletosClientes"`
	CrediarioClientes      []ClienteParcelado `json:"crediarioClientes"`
	CartaoPresenteClientes []ClienteValor     `json:"cartaoPresenteClientes"`
	CashBackClientes       []CashBackCliente  `json:"cashBackClientes"`
}

// Saidas é o livro de saídas de um dia de movimento.
type Saidas struct {
	Descontos float64 `json:"descontos"`
	Saida     float64 `json:"saida"`

	// Campos legados de justificativa única, usados como fallback de
	// conciliação quando saidasRetiradas está vazio.
	JustificativaSaida         string  `json:"justificativaSaida,omitempty"`
	JustificativaCompra        string  `json:"justificativaCompra,omitempty"`
	ValorCompra                float64 `json:"valorCompra"`
	JustificativaSaidaDinheiro string  `json:"justificativaSaidaDinheiro,omitempty"`
	ValorSaidaDinheiro         float64 `json:"valorSaidaDinheiro"`

	SaidasRetiradas      []SaidaRetirada `json:"saidasRetiradas"`
	Devolucoes           []Devolucao     `json:"devolucoes"`
	EnviosCorreios       []Envio         `json:"enviosCorreios"`
	EnviosTransportadora []Envio         `json:"enviosTransportadora"`

	ValesFuncionarios         []ValeFuncionario `json:"valesFuncionarios"`
	ValesIncluidosNoMovimento bool              `json:"valesIncluidosNoMovimento"`
}

// CashFlowSnapshot é a unidade persistida de um dia de movimento.
type CashFlowSnapshot struct {
	Entries       Entradas       `json:"entries"`
	Exits         Saidas         `json:"exits"`
	Cancelamentos []Cancelamento `json:"cancelamentos"`
	Observacoes   string         `json:"observacoes,omitempty"`
}

// NewEntradas cria o livro de entradas zerado com o fundo de caixa do dia.
func NewEntradas(fundoCaixa float64) Entradas {
	return Entradas{
		FundoCaixa:             fundoCaixa,
		Cheques:                []Cheque{},
		Taxas:                  []Taxa{},
		OutrosLancamentos:      []Lancamento{},
		BrindesLancamentos:     []Lancamento{},
		VRLancamentos:          []ValeLancamento{},
		VALancamentos:          []ValeLancamento{},
		PixContaClientes:       []ClienteValor{},
		CartaoLinkClientes:     []ClienteParcelado{},
		BoletosClientes:        []ClienteParcelado{},
		CrediarioClientes:      []ClienteParcelado{},
		CartaoPresenteClientes: []ClienteValor{},
		CashBackClientes:       []CashBackCliente{},
	}
}

// NewSaidas cria o livro de saídas zerado.
func NewSaidas() Saidas {
	return Saidas{
		SaidasRetiradas:      []SaidaRetirada{},
		Devolucoes:           []Devolucao{},
		EnviosCorreios:       []Envio{},
		EnviosTransportadora: []Envio{},
		ValesFuncionarios:    []ValeFuncionario{},
	}
}

// NewCashFlowSnapshot cria o snapshot padrão de um dia ainda sem dados.
func NewCashFlowSnapshot(fundoCaixa float64) *CashFlowSnapshot {
	return &CashFlowSnapshot{
		Entries:       NewEntradas(fundoCaixa),
		Exits:         NewSaidas(),
		Cancelamentos: []Cancelamento{},
	}
}
