package domain

import "fmt"

// Company é o cadastro normalizado devolvido pelo proxy de CNPJ,
// independente do provedor consultado.
type Company struct {
	CNPJ                 string     `json:"cnpj"`
	Tipo                 string     `json:"tipo"`
	Abertura             string     `json:"abertura"`
	Nome                 string     `json:"nome"`
	Fantasia             string     `json:"fantasia"`
	InscricaoEstadual    string     `json:"inscricao_estadual"`
	AtividadePrincipal   []Atividade `json:"atividade_principal"`
	AtividadesSecundarias []Atividade `json:"atividades_secundarias"`
	NaturezaJuridica     string     `json:"natureza_juridica"`
	Logradouro           string     `json:"logradouro"`
	Numero               string     `json:"numero"`
	Complemento          string     `json:"complemento"`
	CEP                  string     `json:"cep"`
	Bairro               string     `json:"bairro"`
	Municipio            string     `json:"municipio"`
	UF                   string     `json:"uf"`
	Email                string     `json:"email"`
	Telefone             string     `json:"telefone"`
	EFR                  string     `json:"efr"`
	Situacao             string     `json:"situacao"`
	DataSituacao         string     `json:"data_situacao"`
	MotivoSituacao       string     `json:"motivo_situacao"`
	SituacaoEspecial     string     `json:"situacao_especial"`
	DataSituacaoEspecial string     `json:"data_situacao_especial"`
	CapitalSocial        string     `json:"capital_social"`
	QSA                  []Socio    `json:"qsa"`
	Status               string     `json:"status"`
}

type Atividade struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type Socio struct {
	Nome string `json:"nome"`
	Qual string `json:"qual"`
}

// ProviderCompany cobre o superconjunto de campos devolvidos pela
// BrasilAPI e pela ReceitaWS. Cada provedor preenche um subconjunto.
type ProviderCompany struct {
	CNPJ string `json:"cnpj"`

	// BrasilAPI
	RazaoSocial            string              `json:"razao_social"`
	NomeFantasia           string              `json:"nome_fantasia"`
	DescricaoMatrizFilial  string              `json:"descricao_identificador_matriz_filial"`
	DataInicioAtividade    string              `json:"data_inicio_atividade"`
	DDDTelefone1           string              `json:"ddd_telefone_1"`
	DescricaoSituacao      string              `json:"descricao_situacao_cadastral"`
	DataSituacaoCadastral  string              `json:"data_situacao_cadastral"`
	DescricaoMotivoSituacao string             `json:"descricao_motivo_situacao_cadastral"`
	InscricoesEstaduais    []StateRegistration `json:"inscricoes_estaduais"`

	// ReceitaWS
	Tipo          string `json:"tipo"`
	Abertura      string `json:"abertura"`
	Nome          string `json:"nome"`
	Fantasia      string `json:"fantasia"`
	Telefone      string `json:"telefone"`
	Situacao      string `json:"situacao"`
	DataSituacao  string `json:"data_situacao"`
	MotivoSituacao string `json:"motivo_situacao"`

	// Comuns aos dois provedores
	InscricaoEstadual    string  `json:"inscricao_estadual"`
	NaturezaJuridica     string  `json:"natureza_juridica"`
	Logradouro           string  `json:"logradouro"`
	Numero               string  `json:"numero"`
	Complemento          string  `json:"complemento"`
	CEP                  string  `json:"cep"`
	Bairro               string  `json:"bairro"`
	Municipio            string  `json:"municipio"`
	UF                   string  `json:"uf"`
	Email                string  `json:"email"`
	SituacaoEspecial     string  `json:"situacao_especial"`
	DataSituacaoEspecial string  `json:"data_situacao_especial"`
	// Número na BrasilAPI, string na ReceitaWS.
	CapitalSocial any          `json:"capital_social"`
	QSA           []SocioEntry `json:"qsa"`

	// A ReceitaWS sinaliza limite de consultas com status ERROR e message.
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StateRegistration struct {
	InscricaoEstadual string `json:"inscricao_estadual"`
	Ativo             bool   `json:"ativo"`
	Situacao          string `json:"situacao"`
}

type SocioEntry struct {
	// BrasilAPI
	NomeSocio         string `json:"nome_socio"`
	QualificacaoSocio string `json:"qualificacao_socio"`
	// ReceitaWS
	Nome string `json:"nome"`
	Qual string `json:"qual"`
}

// CapitalSocialString devolve o capital social como texto, qualquer que
// seja o tipo bruto do provedor.
func (p *ProviderCompany) CapitalSocialString() string {
	switch v := p.CapitalSocial.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
