package fiscal

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	fiscaldomain "github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal/domain"
	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal/fiscalclient"
	"github.com/webyte/ploutos-ledger-api/internal/config"
	"github.com/webyte/ploutos-ledger-api/pkg/brdoc"
	"github.com/webyte/ploutos-ledger-api/pkg/log"
	"github.com/webyte/ploutos-ledger-api/pkg/utils"
)

var (
	ErrCNPJInvalido    = errors.New("CNPJ inválido")
	ErrNaoEncontrado   = errors.New("CNPJ não encontrado")
	ErrLimiteConsultas = errors.New("limite de consultas do serviço de CNPJ atingido")
)

type FiscalIntegrator interface {
	LookupCNPJ(ctx context.Context, cnpj string) (*fiscaldomain.Company, error)
}

type FiscalService struct {
	cfg    *config.Config
	Client fiscalclient.Client
}

func New(cfg *config.Config, client fiscalclient.Client) FiscalIntegrator {
	return &FiscalService{
		cfg:    cfg,
		Client: client,
	}
}

// LookupCNPJ consulta o cadastro de uma empresa. Prefere a BrasilAPI e
// cai para a ReceitaWS quando a primeira falha.
func (s *FiscalService) LookupCNPJ(ctx context.Context, cnpj string) (*fiscaldomain.Company, error) {
	digits := brdoc.OnlyDigits(cnpj)
	if !brdoc.ValidateCNPJ(digits) {
		return nil, ErrCNPJInvalido
	}

	logger := log.ForContext(ctx).WithField("cnpj", digits)

	raw, err := s.Client.FetchCompany(s.cfg.Fiscal.BrasilAPIURL, digits)
	if err != nil {
		logger.WithError(err).Warn("BrasilAPI indisponível, tentando ReceitaWS")

		raw, err = s.Client.FetchCompany(s.cfg.Fiscal.ReceitaWSURL, digits)
		if err != nil {
			logger.WithError(err).Error("Nenhum provedor de CNPJ respondeu")
			return nil, ErrNaoEncontrado
		}
	}

	// A ReceitaWS devolve 200 com status ERROR quando limita consultas
	if raw.Status == "ERROR" || raw.Message != "" {
		logger.Warnf("Provedor de CNPJ limitou a consulta: %s", raw.Message)
		return nil, ErrLimiteConsultas
	}

	company := normalize(raw, digits)

	logger.Debugf("Cadastro normalizado: %s", utils.PrettyJson(company))

	return company, nil
}

// normalize projeta o payload bruto do provedor no formato único da API.
func normalize(raw *fiscaldomain.ProviderCompany, digits string) *fiscaldomain.Company {
	company := &fiscaldomain.Company{
		CNPJ:                  firstNonEmpty(raw.CNPJ, digits),
		Tipo:                  firstNonEmpty(raw.DescricaoMatrizFilial, raw.Tipo),
		Abertura:              firstNonEmpty(raw.DataInicioAtividade, raw.Abertura),
		Nome:                  firstNonEmpty(raw.RazaoSocial, raw.Nome),
		Fantasia:              firstNonEmpty(raw.NomeFantasia, raw.Fantasia),
		InscricaoEstadual:     extractIE(raw),
		AtividadePrincipal:    []fiscaldomain.Atividade{},
		AtividadesSecundarias: []fiscaldomain.Atividade{},
		NaturezaJuridica:      raw.NaturezaJuridica,
		Logradouro:            raw.Logradouro,
		Numero:                raw.Numero,
		Complemento:           raw.Complemento,
		CEP:                   raw.CEP,
		Bairro:                raw.Bairro,
		Municipio:             raw.Municipio,
		UF:                    raw.UF,
		Email:                 raw.Email,
		Telefone:              firstNonEmpty(raw.DDDTelefone1, raw.Telefone),
		Situacao:              firstNonEmpty(raw.DescricaoSituacao, raw.Situacao),
		DataSituacao:          firstNonEmpty(raw.DataSituacaoCadastral, raw.DataSituacao),
		MotivoSituacao:        firstNonEmpty(raw.DescricaoMotivoSituacao, raw.MotivoSituacao),
		SituacaoEspecial:      raw.SituacaoEspecial,
		DataSituacaoEspecial:  raw.DataSituacaoEspecial,
		CapitalSocial:         raw.CapitalSocialString(),
		QSA:                   []fiscaldomain.Socio{},
		Status:                "OK",
	}

	for _, entry := range raw.QSA {
		company.QSA = append(company.QSA, fiscaldomain.Socio{
			Nome: firstNonEmpty(entry.NomeSocio, entry.Nome),
			Qual: firstNonEmpty(entry.QualificacaoSocio, entry.Qual),
		})
	}

	return company
}

// extractIE tenta a Inscrição Estadual em campo direto e depois na lista
// de inscrições, preferindo a ativa ou habilitada. Nem todo provedor retorna.
func extractIE(raw *fiscaldomain.ProviderCompany) string {
	if ie := strings.TrimSpace(raw.InscricaoEstadual); ie != "" {
		return ie
	}

	if len(raw.InscricoesEstaduais) == 0 {
		return ""
	}

	pick := raw.InscricoesEstaduais[0]
	for _, reg := range raw.InscricoesEstaduais {
		if reg.Ativo {
			pick = reg
			break
		}
		if strings.Contains(strings.ToLower(reg.Situacao), "habil") {
			pick = reg
		}
	}

	return strings.TrimSpace(pick.InscricaoEstadual)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
