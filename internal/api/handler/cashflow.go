package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/calculating"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/apiErrors"
)

// GetCashFlow devolve o movimento do dia, criando o padrão quando não há dados
func GetCashFlow(journal journaling.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := httprouter.ParamsFromContext(r.Context()).ByName("date")

		snapshot, err := journal.Load(r.Context(), day)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// SaveCashFlow grava o movimento do dia, recusando quando os campos
// agregados não conferem com sua itemização
func SaveCashFlow(journal journaling.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := httprouter.ParamsFromContext(r.Context()).ByName("date")

		var snapshot domain.CashFlowSnapshot
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := journal.Save(r.Context(), day, &snapshot); err != nil {
			var reconciliationErr *journaling.ReconciliationError
			if errors.As(err, &reconciliationErr) {
				apiErrors.WriteError(w, apiErrors.ErrReconciliation, reconciliationErr.Error(), map[string]any{
					"campos": reconciliationErr.Campos,
				})
				return
			}

			if validationErr := journaling.ValidateDay(day); validationErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar movimento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&snapshot)
	}
}

// ClearCashFlow remove o movimento do dia e devolve o movimento padrão
func ClearCashFlow(journal journaling.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := httprouter.ParamsFromContext(r.Context()).ByName("date")

		snapshot, err := journal.Clear(r.Context(), day)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}

// GetCashFlowTotals calcula os totais agregados do movimento do dia
func GetCashFlowTotals(journal journaling.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := httprouter.ParamsFromContext(r.Context()).ByName("date")

		snapshot, err := journal.Load(r.Context(), day)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		totais := calculating.Calculate(snapshot.Entries, snapshot.Exits)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(totais); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
