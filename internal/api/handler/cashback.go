package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/cashback"
	"github.com/webyte/ploutos-ledger-api/pkg/apiErrors"
)

type CashbackBalanceResponse struct {
	CPF        string  `json:"cpf"`
	Disponivel float64 `json:"disponivel"`
}

type RedeemCashbackRequest struct {
	Valor float64 `json:"valor"`
}

// GetCashbackBalance devolve o saldo de cashback disponível de um cliente
func GetCashbackBalance(service cashback.CashbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cpf := httprouter.ParamsFromContext(r.Context()).ByName("cpf")

		disponivel, err := service.Disponivel(cpf)
		if err != nil {
			handleCashbackError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CashbackBalanceResponse{
			CPF:        cpf,
			Disponivel: disponivel,
		})
	}
}

// RedeemCashback abate um valor do saldo de cashback de um cliente
func RedeemCashback(service cashback.CashbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cpf := httprouter.ParamsFromContext(r.Context()).ByName("cpf")

		var req RedeemCashbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.Utilizar(cpf, req.Valor); err != nil {
			handleCashbackError(w, err)
			return
		}

		disponivel, err := service.Disponivel(cpf)
		if err != nil {
			handleCashbackError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CashbackBalanceResponse{
			CPF:        cpf,
			Disponivel: disponivel,
		})
	}
}

func handleCashbackError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cashback.ErrCPFInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "CPF inválido", nil)

	case errors.Is(err, cashback.ErrValorInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O valor deve ser maior que zero", nil)

	case errors.Is(err, cashback.ErrSaldoInsuficiente):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientBalance, "Saldo de cashback insuficiente", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar saldo de cashback", nil)
	}
}
