package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/webyte/ploutos-ledger-api/infrastructure/database/postgres"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
)

const cashbackTable = "cashback_descontos"

type CashbackRepository interface {
	GetByCPF(cpf string) (*domain.CashBackSaldo, error)
	Save(saldo *domain.CashBackSaldo) error
}

type cashbackRepository struct {
	conn *postgres.Connection
}

func NewCashbackRepository(conn *postgres.Connection) CashbackRepository {
	return &cashbackRepository{
		conn: conn,
	}
}

func (r *cashbackRepository) GetByCPF(cpf string) (*domain.CashBackSaldo, error) {
	var saldo domain.CashBackSaldo
	err := r.conn.QueryRow(
		"SELECT cpf, nome, valor, valor_utilizado, updated_at FROM cashback_descontos WHERE cpf = $1",
		cpf,
	).Scan(
		&saldo.CPF,
		&saldo.Nome,
		&saldo.Valor,
		&saldo.ValorUtilizado,
		&saldo.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar saldo de cashback")
	}

	return &saldo, nil
}

func (r *cashbackRepository) Save(saldo *domain.CashBackSaldo) error {
	saldo.UpdatedAt = time.Now()

	queryBuilder := squirrel.
		Insert(cashbackTable).
		Columns("cpf", "nome", "valor", "valor_utilizado", "updated_at").
		Values(saldo.CPF, saldo.Nome, saldo.Valor, saldo.ValorUtilizado, saldo.UpdatedAt).
		Suffix("ON CONFLICT (cpf) DO UPDATE SET nome = EXCLUDED.nome, valor = EXCLUDED.valor, valor_utilizado = EXCLUDED.valor_utilizado, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	saldoSQL, saldoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(saldoSQL, saldoArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao gravar saldo de cashback")
	}

	return nil
}
