package cashback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webyte/ploutos-ledger-api/infrastructure/repository/mocks"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const cpfValido = "12345678909"

func TestDisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(&domain.CashBackSaldo{
		CPF:            cpfValido,
		Valor:          50,
		ValorUtilizado: 20,
	}, nil)

	disponivel, err := service.Disponivel(cpfValido)
	require.NoError(t, err)
	assert.Equal(t, 30.0, disponivel)
}

func TestDisponivelClienteSemRegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(nil, nil)

	disponivel, err := service.Disponivel(cpfValido)
	require.NoError(t, err)
	assert.Equal(t, 0.0, disponivel)
}

func TestDisponivelCPFInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCashbackRepository(ctrl))

	_, err := service.Disponivel("11111111111")
	assert.ErrorIs(t, err, ErrCPFInvalido)
}

func TestUtilizar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(&domain.CashBackSaldo{
		CPF:   cpfValido,
		Valor: 50,
	}, nil)
	repo.EXPECT().Save(gomock.Any()).DoAndReturn(func(saldo *domain.CashBackSaldo) error {
		assert.Equal(t, 30.0, saldo.ValorUtilizado)
		return nil
	})

	require.NoError(t, service.Utilizar(cpfValido, 30))
}

func TestUtilizarSaldoInsuficiente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(&domain.CashBackSaldo{
		CPF:            cpfValido,
		Valor:          50,
		ValorUtilizado: 45,
	}, nil)

	assert.ErrorIs(t, service.Utilizar(cpfValido, 10), ErrSaldoInsuficiente)
}

func TestUtilizarValorInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCashbackRepository(ctrl))

	assert.ErrorIs(t, service.Utilizar(cpfValido, 0), ErrValorInvalido)
	assert.ErrorIs(t, service.Utilizar(cpfValido, -5), ErrValorInvalido)
}

func TestCreditarNovoCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any()).Return(nil)

	saldo, err := service.Creditar("Ana", "123.456.789-09", 25)
	require.NoError(t, err)
	assert.Equal(t, cpfValido, saldo.CPF)
	assert.Equal(t, "Ana", saldo.Nome)
	assert.Equal(t, 25.0, saldo.Valor)
}

func TestCreditarAcumula(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCashbackRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetByCPF(cpfValido).Return(&domain.CashBackSaldo{
		CPF:   cpfValido,
		Nome:  "Ana",
		Valor: 10.10,
	}, nil)
	repo.EXPECT().Save(gomock.Any()).Return(nil)

	saldo, err := service.Creditar("", cpfValido, 0.20)
	require.NoError(t, err)
	assert.Equal(t, 10.30, saldo.Valor)
	assert.Equal(t, "Ana", saldo.Nome)
}
