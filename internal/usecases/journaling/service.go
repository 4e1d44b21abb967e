// Package journaling grava e recupera o movimento de caixa de cada dia.
//
// A persistência é em duas camadas: uma cópia local em arquivos, sempre
// gravada primeiro, e a fonte de verdade no banco, espelhada logo em seguida
// (ou pelo agendador de backup quando o banco está fora). Conflitos entre as
// camadas são resolvidos por última escrita vence, usando o carimbo de
// gravação do registro.
package journaling

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/webyte/ploutos-ledger-api/infrastructure/storage"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/reconciling"
	"github.com/webyte/ploutos-ledger-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BaseKey é o prefixo das chaves de movimento. A chave legada, sem sufixo de
// data, é migrada para a chave datada na primeira leitura.
const BaseKey = "cashFlowData"

// StorageKey monta a chave datada de um dia (cashFlowData:<YYYY-MM-DD>).
func StorageKey(day string) string {
	return fmt.Sprintf("%s:%s", BaseKey, day)
}

// ValidateDay aceita apenas datas de calendário no formato YYYY-MM-DD.
func ValidateDay(day string) error {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", day)
	}
	return nil
}

// ReconciliationError indica que o movimento não pode ser gravado porque um
// ou mais campos agregados não conferem com sua itemização.
type ReconciliationError struct {
	Campos []string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("campos não conferem com a itemização: %s", strings.Join(e.Campos, ", "))
}

// Journal expõe as operações de persistência do movimento de caixa.
type Journal interface {
	Load(ctx context.Context, day string) (*domain.CashFlowSnapshot, error)
	Save(ctx context.Context, day string, snapshot *domain.CashFlowSnapshot) error
	Clear(ctx context.Context, day string) (*domain.CashFlowSnapshot, error)
	SyncPending(ctx context.Context) error
	PendingCount() int
}

type Service struct {
	local  storage.KV
	remote storage.KV

	// Fundo de caixa usado ao criar o movimento padrão de um dia sem dados.
	fundoCaixaPadrao float64

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewService(local, remote storage.KV, fundoCaixaPadrao float64) *Service {
	return &Service{
		local:            local,
		remote:           remote,
		fundoCaixaPadrao: fundoCaixaPadrao,
		pending:          make(map[string]struct{}),
	}
}

// Load recupera o movimento do dia. Procura a chave datada nas duas camadas
// e fica com a gravação mais recente; quando nenhuma existe, tenta a chave
// legada e a migra para a datada. Falhas de leitura ou parse rebaixam para o
// movimento padrão do dia.
func (s *Service) Load(ctx context.Context, day string) (*domain.CashFlowSnapshot, error) {
	if err := ValidateDay(day); err != nil {
		return nil, err
	}

	key := StorageKey(day)
	record := s.newest(ctx, key)

	if record == nil {
		record = s.migrateLegacy(ctx, key)
	}

	if record == nil {
		return domain.NewCashFlowSnapshot(s.fundoCaixaPadrao), nil
	}

	var snapshot domain.CashFlowSnapshot
	if err := json.Unmarshal(record.Payload, &snapshot); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).
			Error("Registro de movimento ilegível, usando movimento padrão")
		return domain.NewCashFlowSnapshot(s.fundoCaixaPadrao), nil
	}

	return &snapshot, nil
}

// newest lê a chave nas duas camadas e devolve o registro mais recente,
// realinhando a cópia local quando o banco está na frente. Erros de leitura
// são logados e tratados como ausência de dado.
func (s *Service) newest(ctx context.Context, key string) *storage.Record {
	logger := log.ForContext(ctx).WithField("key", key)

	local, err := s.local.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler cópia local do movimento")
		local = nil
	}

	remote, err := s.remote.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler movimento no banco")
		remote = nil
	}

	switch {
	case local == nil:
		if remote != nil {
			if err := s.local.Set(ctx, key, *remote); err != nil {
				logger.WithError(err).Warn("Erro ao realinhar cópia local")
			}
		}
		return remote
	case remote == nil:
		return local
	case remote.UpdatedAt.After(local.UpdatedAt):
		if err := s.local.Set(ctx, key, *remote); err != nil {
			logger.WithError(err).Warn("Erro ao realinhar cópia local")
		}
		return remote
	default:
		return local
	}
}

// migrateLegacy busca a chave sem data, regrava sob a chave datada e apaga a
// legada. Executa uma única vez, na primeira leitura após a atualização.
func (s *Service) migrateLegacy(ctx context.Context, key string) *storage.Record {
	legacy := s.newest(ctx, BaseKey)
	if legacy == nil {
		return nil
	}

	logger := log.ForContext(ctx).WithField("key", key)
	logger.Info("Migrando movimento da chave legada para a chave datada")

	if err := s.local.Set(ctx, key, *legacy); err != nil {
		logger.WithError(err).Warn("Erro ao gravar chave datada na migração")
	}
	if err := s.remote.Set(ctx, key, *legacy); err != nil {
		logger.WithError(err).Warn("Erro ao espelhar chave datada na migração")
		s.markPending(key)
	}
	if err := s.local.Delete(ctx, BaseKey); err != nil {
		logger.WithError(err).Warn("Erro ao remover chave legada local")
	}
	if err := s.remote.Delete(ctx, BaseKey); err != nil {
		logger.WithError(err).Warn("Erro ao remover chave legada no banco")
	}

	return legacy
}

// Save valida a conciliação do dia e grava o movimento. A gravação local é
// obrigatória; o espelho no banco é melhor esforço e, quando falha, a chave
// fica pendente para o agendador de backup.
func (s *Service) Save(ctx context.Context, day string, snapshot *domain.CashFlowSnapshot) error {
	if err := ValidateDay(day); err != nil {
		return err
	}

	if campos := reconciling.CamposInvalidos(snapshot.Entries, snapshot.Exits); len(campos) > 0 {
		return &ReconciliationError{Campos: campos}
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar movimento: %w", err)
	}

	key := StorageKey(day)
	record := storage.Record{Payload: payload, UpdatedAt: time.Now()}

	if err := s.local.Set(ctx, key, record); err != nil {
		return fmt.Errorf("erro ao gravar movimento local: %w", err)
	}

	if err := s.remote.Set(ctx, key, record); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).
			Warn("Erro ao espelhar movimento no banco, chave marcada como pendente")
		s.markPending(key)
		return nil
	}

	s.clearPending(key)
	return nil
}

// Clear apaga o movimento do dia nas duas camadas e devolve o movimento
// padrão para reiniciar o estado em memória.
func (s *Service) Clear(ctx context.Context, day string) (*domain.CashFlowSnapshot, error) {
	if err := ValidateDay(day); err != nil {
		return nil, err
	}

	key := StorageKey(day)
	if err := s.local.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("erro ao limpar movimento local: %w", err)
	}
	if err := s.remote.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("erro ao limpar movimento no banco: %w", err)
	}

	s.clearPending(key)
	return domain.NewCashFlowSnapshot(s.fundoCaixaPadrao), nil
}

// SyncPending reenvia para o banco as chaves que falharam no espelhamento.
func (s *Service) SyncPending(ctx context.Context) error {
	for _, key := range s.pendingKeys() {
		record, err := s.local.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("erro ao ler chave pendente %s: %w", key, err)
		}
		if record == nil {
			// A cópia local sumiu; nada a espelhar.
			s.clearPending(key)
			continue
		}

		if err := s.remote.Set(ctx, key, *record); err != nil {
			return fmt.Errorf("erro ao espelhar chave pendente %s: %w", key, err)
		}
		s.clearPending(key)

		log.ForContext(ctx).WithField("key", key).Info("Chave pendente espelhada no banco")
	}

	return nil
}

// PendingCount informa quantas chaves aguardam espelhamento.
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Service) pendingKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	return keys
}

func (s *Service) markPending(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = struct{}{}
}

func (s *Service) clearPending(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}
