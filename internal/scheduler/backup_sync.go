package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/internal/config"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/utils"
)

// BackupSyncConfig representa a configuração do agendador de espelhamento
type BackupSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BackupSyncService reenvia ao banco as gravações de movimento que
// ficaram pendentes quando o banco estava indisponível.
type BackupSyncService struct {
	scheduler           *gocron.Scheduler
	config              BackupSyncConfig
	journal             journaling.Journal
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewBackupSyncService cria uma nova instância do serviço de espelhamento
func NewBackupSyncService(journal journaling.Journal, appConfig *config.Config) *BackupSyncService {
	syncConfig := BackupSyncConfig{
		CronSchedule: appConfig.BackupSync.CronSchedule,
		SyncEnabled:  appConfig.BackupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de espelhamento de movimentos carregada")

	return &BackupSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		journal:   journal,
	}
}

// Start inicia o agendador
func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Espelhamento de movimentos desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de espelhamento de movimentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPendingRecords(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar espelhamento de movimentos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de espelhamento de movimentos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncPendingRecords reenvia os registros pendentes ao banco
func (s *BackupSyncService) syncPendingRecords(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Espelhamento de movimentos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	pending := s.journal.PendingCount()
	if pending == 0 {
		logrus.Debug("Nenhum movimento pendente de espelhamento")
		return
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"pending": pending,
	}).Info("Iniciando espelhamento de movimentos pendentes")

	if err := s.journal.SyncPending(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao espelhar movimentos pendentes")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"duration":  time.Since(startTime).String(),
		"remaining": s.journal.PendingCount(),
	}).Info("Espelhamento de movimentos concluído")
}

// TriggerManualSync inicia manualmente um espelhamento
func (s *BackupSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Espelhamento de movimentos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando espelhamento manual de movimentos")
	go s.syncPendingRecords(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *BackupSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"pending_records":        s.journal.PendingCount(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
