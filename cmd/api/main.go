package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/infrastructure/database/postgres"
	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal"
	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal/fiscalclient"
	"github.com/webyte/ploutos-ledger-api/infrastructure/repository"
	"github.com/webyte/ploutos-ledger-api/infrastructure/storage"
	"github.com/webyte/ploutos-ledger-api/internal/api"
	"github.com/webyte/ploutos-ledger-api/internal/config"
	"github.com/webyte/ploutos-ledger-api/internal/scheduler"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/authenticating"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/cashback"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	cashbackRepo := repository.NewCashbackRepository(pgConn)

	// Camada local é a cópia de trabalho; o banco é a fonte de verdade
	// espelhada em segundo plano quando indisponível na gravação.
	localStore, err := storage.NewFileStore(cfg.CashFlow.LocalDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório local de movimentos")
	}
	remoteStore := repository.NewCashFlowRecordRepository(pgConn)

	journal := journaling.NewService(localStore, remoteStore, cfg.CashFlow.FundoCaixaPadrao)

	authenticator := authenticating.NewService(userRepo, cfg)
	cashbackService := cashback.NewService(cashbackRepo)

	fiscalClient := fiscalclient.NewClient()
	fiscalIntegrator := fiscal.New(cfg, fiscalClient)

	backupSyncService := scheduler.NewBackupSyncService(journal, cfg)
	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de espelhamento de movimentos")
	} else {
		logrus.Info("Agendador de espelhamento de movimentos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		journal,
		cashbackService,
		fiscalIntegrator,
		authenticator,
		backupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
