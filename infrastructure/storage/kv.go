// Package storage define o contrato chave-valor usado pela persistência do
// movimento de caixa e a implementação local em arquivos.
package storage

import (
	"context"
	"time"
)

// Record é o valor persistido sob uma chave. UpdatedAt carimba a gravação e
// decide conflitos entre camadas (última escrita vence).
type Record struct {
	Payload   []byte    `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KV é um armazenamento chave-valor com escrita atômica por chave. Get
// retorna nil quando a chave não existe.
type KV interface {
	Get(ctx context.Context, key string) (*Record, error)
	Set(ctx context.Context, key string, record Record) error
	Delete(ctx context.Context, key string) error
}
