package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal"
	"github.com/webyte/ploutos-ledger-api/pkg/apiErrors"
)

// LookupCNPJ consulta o cadastro de uma empresa nos provedores públicos
func LookupCNPJ(service fiscal.FiscalIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cnpj := httprouter.ParamsFromContext(r.Context()).ByName("cnpj")

		company, err := service.LookupCNPJ(r.Context(), cnpj)
		if err != nil {
			switch {
			case errors.Is(err, fiscal.ErrCNPJInvalido):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "CNPJ inválido (deve ter 14 dígitos)", nil)

			case errors.Is(err, fiscal.ErrNaoEncontrado):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "CNPJ não encontrado", nil)

			case errors.Is(err, fiscal.ErrLimiteConsultas):
				apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Serviço de CNPJ indisponível no momento", nil)

			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar CNPJ", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
