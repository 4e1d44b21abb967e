// Package cashback mantém os saldos de cashback dos clientes, chaveados por
// CPF. O saldo é consumido pelos lançamentos de cashback do movimento de
// caixa.
package cashback

import (
	"errors"

	"github.com/webyte/ploutos-ledger-api/infrastructure/repository"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/pkg/brdoc"
	"github.com/webyte/ploutos-ledger-api/pkg/money"
)

var (
	ErrCPFInvalido       = errors.New("CPF inválido")
	ErrValorInvalido     = errors.New("o valor deve ser maior que zero")
	ErrSaldoInsuficiente = errors.New("saldo de cashback insuficiente")
)

type CashbackService interface {
	Disponivel(cpf string) (float64, error)
	Utilizar(cpf string, valor float64) error
	Creditar(nome, cpf string, valor float64) (*domain.CashBackSaldo, error)
}

type Service struct {
	repo repository.CashbackRepository
}

func NewService(repo repository.CashbackRepository) CashbackService {
	return &Service{
		repo: repo,
	}
}

// Disponivel devolve o saldo ainda não utilizado do CPF. Cliente sem
// registro tem saldo zero, não é erro.
func (s *Service) Disponivel(cpf string) (float64, error) {
	if !brdoc.ValidateCPF(cpf) {
		return 0, ErrCPFInvalido
	}

	saldo, err := s.repo.GetByCPF(brdoc.OnlyDigits(cpf))
	if err != nil {
		return 0, err
	}
	if saldo == nil {
		return 0, nil
	}

	return saldo.Disponivel(), nil
}

// Utilizar debita o valor do saldo do CPF, conferindo a suficiência antes.
func (s *Service) Utilizar(cpf string, valor float64) error {
	if !brdoc.ValidateCPF(cpf) {
		return ErrCPFInvalido
	}
	if !brdoc.ValidateValorTransacao(valor) {
		return ErrValorInvalido
	}

	saldo, err := s.repo.GetByCPF(brdoc.OnlyDigits(cpf))
	if err != nil {
		return err
	}
	if saldo == nil || money.Subtract(saldo.Disponivel(), valor) < 0 {
		return ErrSaldoInsuficiente
	}

	saldo.ValorUtilizado = money.Add(saldo.ValorUtilizado, valor)
	return s.repo.Save(saldo)
}

// Creditar acumula valor no saldo do CPF, criando o registro se necessário.
func (s *Service) Creditar(nome, cpf string, valor float64) (*domain.CashBackSaldo, error) {
	if !brdoc.ValidateCPF(cpf) {
		return nil, ErrCPFInvalido
	}
	if !brdoc.ValidateValorTransacao(valor) {
		return nil, ErrValorInvalido
	}

	cpfLimpo := brdoc.OnlyDigits(cpf)
	saldo, err := s.repo.GetByCPF(cpfLimpo)
	if err != nil {
		return nil, err
	}
	if saldo == nil {
		saldo = &domain.CashBackSaldo{CPF: cpfLimpo, Nome: nome}
	}
	if nome != "" {
		saldo.Nome = nome
	}

	saldo.Valor = money.Add(saldo.Valor, valor)
	if err := s.repo.Save(saldo); err != nil {
		return nil, err
	}

	return saldo, nil
}
