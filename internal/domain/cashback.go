package domain

import "time"

// CashBackSaldo é o saldo de cashback de um cliente, chaveado pelo CPF.
// O valor disponível é Valor - ValorUtilizado.
type CashBackSaldo struct {
	CPF            string    `json:"cpf"`
	Nome           string    `json:"nome"`
	Valor          float64   `json:"valor"`
	ValorUtilizado float64   `json:"valorUtilizado"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Disponivel retorna o saldo ainda não utilizado.
func (c CashBackSaldo) Disponivel() float64 {
	return c.Valor - c.ValorUtilizado
}
