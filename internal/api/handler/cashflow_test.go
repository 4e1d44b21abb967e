package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/apiErrors"
)

// stubJournal devolve respostas fixas para os handlers de movimento.
type stubJournal struct {
	snapshot *domain.CashFlowSnapshot
	saveErr  error
	saved    *domain.CashFlowSnapshot
}

func (j *stubJournal) Load(ctx context.Context, day string) (*domain.CashFlowSnapshot, error) {
	if err := journaling.ValidateDay(day); err != nil {
		return nil, err
	}
	return j.snapshot, nil
}

func (j *stubJournal) Save(ctx context.Context, day string, snapshot *domain.CashFlowSnapshot) error {
	if err := journaling.ValidateDay(day); err != nil {
		return err
	}
	if j.saveErr != nil {
		return j.saveErr
	}
	j.saved = snapshot
	return nil
}

func (j *stubJournal) Clear(ctx context.Context, day string) (*domain.CashFlowSnapshot, error) {
	if err := journaling.ValidateDay(day); err != nil {
		return nil, err
	}
	return j.snapshot, nil
}

func (j *stubJournal) SyncPending(ctx context.Context) error { return nil }

func (j *stubJournal) PendingCount() int { return 0 }

func requestWithDate(method, target, day string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	params := httprouter.Params{{Key: "date", Value: day}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestGetCashFlow(t *testing.T) {
	snapshot := domain.NewCashFlowSnapshot(400)
	snapshot.Entries.Dinheiro = 150

	journal := &stubJournal{snapshot: snapshot}

	rec := httptest.NewRecorder()
	GetCashFlow(journal)(rec, requestWithDate(http.MethodGet, "/v1/cashflow/2024-01-15", "2024-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.CashFlowSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 150.0, got.Entries.Dinheiro)
	assert.Equal(t, 400.0, got.Entries.FundoCaixa)
}

func TestGetCashFlowDataInvalida(t *testing.T) {
	journal := &stubJournal{}

	rec := httptest.NewRecorder()
	GetCashFlow(journal)(rec, requestWithDate(http.MethodGet, "/v1/cashflow/15-01-2024", "15-01-2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveCashFlow(t *testing.T) {
	journal := &stubJournal{}

	snapshot := domain.NewCashFlowSnapshot(400)
	body, err := json.Marshal(snapshot)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	SaveCashFlow(journal)(rec, requestWithDate(http.MethodPut, "/v1/cashflow/2024-01-15", "2024-01-15", body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, journal.saved)
	assert.Equal(t, 400.0, journal.saved.Entries.FundoCaixa)
}

func TestSaveCashFlowRecusadoPorReconciliacao(t *testing.T) {
	journal := &stubJournal{
		saveErr: &journaling.ReconciliationError{Campos: []string{"pixConta"}},
	}

	snapshot := domain.NewCashFlowSnapshot(400)
	body, err := json.Marshal(snapshot)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	SaveCashFlow(journal)(rec, requestWithDate(http.MethodPut, "/v1/cashflow/2024-01-15", "2024-01-15", body))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrReconciliation, apiErr.Code)

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"pixConta"}, details["campos"])
}

func TestSaveCashFlowCorpoInvalido(t *testing.T) {
	journal := &stubJournal{}

	rec := httptest.NewRecorder()
	SaveCashFlow(journal)(rec, requestWithDate(http.MethodPut, "/v1/cashflow/2024-01-15", "2024-01-15", []byte("{invalido")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCashFlowTotals(t *testing.T) {
	snapshot := domain.NewCashFlowSnapshot(0)
	snapshot.Entries.Dinheiro = 500
	snapshot.Entries.Cartao = 300
	snapshot.Entries.Cheques = []domain.Cheque{{Valor: 100}}
	snapshot.Exits.SaidasRetiradas = []domain.SaidaRetirada{{Valor: 50, IncluidoNoMovimento: true}}

	journal := &stubJournal{snapshot: snapshot}

	rec := httptest.NewRecorder()
	GetCashFlowTotals(journal)(rec, requestWithDate(http.MethodGet, "/v1/cashflow/2024-01-15/totals", "2024-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var totals map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 800.0, totals["totalEntradas"])
	assert.Equal(t, 100.0, totals["totalCheques"])
	assert.Equal(t, 50.0, totals["totalSaidasRetiradas"])
	assert.Equal(t, 850.0, totals["totalFinal"])
}
