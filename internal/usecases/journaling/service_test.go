package journaling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webyte/ploutos-ledger-api/infrastructure/storage"
	"github.com/webyte/ploutos-ledger-api/infrastructure/storage/mocks"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const dia = "2024-01-15"

func snapshotComDinheiro(valor float64) *domain.CashFlowSnapshot {
	snapshot := domain.NewCashFlowSnapshot(400)
	snapshot.Entries.Dinheiro = valor
	return snapshot
}

func recordDe(t *testing.T, snapshot *domain.CashFlowSnapshot, updatedAt time.Time) storage.Record {
	t.Helper()
	payload, err := json.Marshal(snapshot)
	require.NoError(t, err)
	return storage.Record{Payload: payload, UpdatedAt: updatedAt}
}

func TestSaveELoadIdempotente(t *testing.T) {
	// Camadas reais em memória de arquivo: garante que salvar e carregar o
	// mesmo dia devolve um registro igual ao gravado.
	local, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	remote, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	service := NewService(local, remote, 400)
	ctx := context.Background()

	gravado := snapshotComDinheiro(500)
	gravado.Entries.AdicionarCheque(domain.Cheque{Nome: "Cliente A", Valor: 100})
	gravado.Observacoes = "feriado municipal"

	require.NoError(t, service.Save(ctx, dia, gravado))

	lido, err := service.Load(ctx, dia)
	require.NoError(t, err)
	assert.Equal(t, gravado, lido)
	assert.Equal(t, 0, service.PendingCount())
}

func TestLoadDiaSemDados(t *testing.T) {
	local, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	remote, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	service := NewService(local, remote, 400)

	snapshot, err := service.Load(context.Background(), dia)
	require.NoError(t, err)
	assert.Equal(t, 400.0, snapshot.Entries.FundoCaixa)
	assert.Empty(t, snapshot.Entries.Cheques)
}

func TestSaveRecusaMovimentoInconsistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mocks.NewMockKV(ctrl)
	remote := mocks.NewMockKV(ctrl)
	service := NewService(local, remote, 400)

	snapshot := domain.NewCashFlowSnapshot(400)
	snapshot.Entries.PixConta = 150 // positivo sem itemização

	err := service.Save(context.Background(), dia, snapshot)

	var recErr *ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, []string{"pixConta"}, recErr.Campos)
}

func TestSaveDataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockKV(ctrl), mocks.NewMockKV(ctrl), 400)

	assert.Error(t, service.Save(context.Background(), "15/01/2024", domain.NewCashFlowSnapshot(400)))
	assert.Error(t, service.Save(context.Background(), "2024-02-31", domain.NewCashFlowSnapshot(400)))
}

func TestSaveMarcaPendenteQuandoBancoFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mocks.NewMockKV(ctrl)
	remote := mocks.NewMockKV(ctrl)
	service := NewService(local, remote, 400)

	key := StorageKey(dia)
	local.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)
	remote.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(assert.AnError)

	require.NoError(t, service.Save(context.Background(), dia, snapshotComDinheiro(100)))
	assert.Equal(t, 1, service.PendingCount())

	// SyncPending reenvia a partir da cópia local
	record := recordDe(t, snapshotComDinheiro(100), time.Now())
	local.EXPECT().Get(gomock.Any(), key).Return(&record, nil)
	remote.EXPECT().Set(gomock.Any(), key, record).Return(nil)

	require.NoError(t, service.SyncPending(context.Background()))
	assert.Equal(t, 0, service.PendingCount())
}

func TestLoadUltimaEscritaVence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mocks.NewMockKV(ctrl)
	remote := mocks.NewMockKV(ctrl)
	service := NewService(local, remote, 400)

	key := StorageKey(dia)
	antigo := recordDe(t, snapshotComDinheiro(100), time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	novo := recordDe(t, snapshotComDinheiro(999), time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	local.EXPECT().Get(gomock.Any(), key).Return(&antigo, nil)
	remote.EXPECT().Get(gomock.Any(), key).Return(&novo, nil)
	// O banco está na frente: a cópia local é realinhada
	local.EXPECT().Set(gomock.Any(), key, novo).Return(nil)

	snapshot, err := service.Load(context.Background(), dia)
	require.NoError(t, err)
	assert.Equal(t, 999.0, snapshot.Entries.Dinheiro)
}

func TestLoadMigraChaveLegada(t *testing.T) {
	local, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	remote, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	legado := recordDe(t, snapshotComDinheiro(250), time.Now())
	require.NoError(t, local.Set(ctx, BaseKey, legado))

	service := NewService(local, remote, 400)

	snapshot, err := service.Load(ctx, dia)
	require.NoError(t, err)
	assert.Equal(t, 250.0, snapshot.Entries.Dinheiro)

	// A chave legada foi removida e a datada passou a existir nas duas camadas
	apagado, err := local.Get(ctx, BaseKey)
	require.NoError(t, err)
	assert.Nil(t, apagado)

	migrado, err := remote.Get(ctx, StorageKey(dia))
	require.NoError(t, err)
	assert.NotNil(t, migrado)
}

func TestLoadRegistroCorrompidoUsaPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mocks.NewMockKV(ctrl)
	remote := mocks.NewMockKV(ctrl)
	service := NewService(local, remote, 400)

	key := StorageKey(dia)
	corrompido := storage.Record{Payload: []byte("{nao é json"), UpdatedAt: time.Now()}
	local.EXPECT().Get(gomock.Any(), key).Return(&corrompido, nil)
	remote.EXPECT().Get(gomock.Any(), key).Return(nil, nil)

	snapshot, err := service.Load(context.Background(), dia)
	require.NoError(t, err)
	assert.Equal(t, 400.0, snapshot.Entries.FundoCaixa)
}

func TestClearRemoveEDevolvePadrao(t *testing.T) {
	local, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	remote, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	service := NewService(local, remote, 400)
	ctx := context.Background()

	require.NoError(t, service.Save(ctx, dia, snapshotComDinheiro(500)))

	limpo, err := service.Clear(ctx, dia)
	require.NoError(t, err)
	assert.Equal(t, 0.0, limpo.Entries.Dinheiro)
	assert.Equal(t, 400.0, limpo.Entries.FundoCaixa)

	recarregado, err := service.Load(ctx, dia)
	require.NoError(t, err)
	assert.Equal(t, 0.0, recarregado.Entries.Dinheiro)
}
