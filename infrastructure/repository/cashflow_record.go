package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/webyte/ploutos-ledger-api/infrastructure/database/postgres"
	"github.com/webyte/ploutos-ledger-api/infrastructure/storage"
)

const cashFlowRecordsTable = "cash_flow_records"

// cashFlowRecordRepository implementa storage.KV sobre o Postgres e serve de
// fonte de verdade do movimento de caixa. A chave é o mesmo identificador
// usado na cópia local (cashFlowData:<YYYY-MM-DD>).
type cashFlowRecordRepository struct {
	conn *postgres.Connection
}

func NewCashFlowRecordRepository(conn *postgres.Connection) storage.KV {
	return &cashFlowRecordRepository{
		conn: conn,
	}
}

func (r *cashFlowRecordRepository) Get(_ context.Context, key string) (*storage.Record, error) {
	var record storage.Record
	err := r.conn.QueryRow(
		"SELECT payload, updated_at FROM cash_flow_records WHERE storage_key = $1",
		key,
	).Scan(&record.Payload, &record.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar registro %s", key)
	}

	return &record, nil
}

func (r *cashFlowRecordRepository) Set(_ context.Context, key string, record storage.Record) error {
	queryBuilder := squirrel.
		Insert(cashFlowRecordsTable).
		Columns("storage_key", "payload", "updated_at").
		Values(key, record.Payload, record.UpdatedAt).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	recordSQL, recordArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(recordSQL, recordArgs...)
	if err != nil {
		return errors.Wrapf(err, "erro ao gravar registro %s", key)
	}

	return nil
}

func (r *cashFlowRecordRepository) Delete(_ context.Context, key string) error {
	queryBuilder := squirrel.
		Delete(cashFlowRecordsTable).
		Where(squirrel.Eq{"storage_key": key}).
		PlaceholderFormat(squirrel.Dollar)

	recordSQL, recordArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(recordSQL, recordArgs...)
	if err != nil {
		return errors.Wrapf(err, "erro ao remover registro %s", key)
	}

	return nil
}
