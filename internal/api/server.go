package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal"
	"github.com/webyte/ploutos-ledger-api/internal/api/handler"
	"github.com/webyte/ploutos-ledger-api/internal/api/handler/router"
	"github.com/webyte/ploutos-ledger-api/internal/config"
	"github.com/webyte/ploutos-ledger-api/internal/scheduler"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/authenticating"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/cashback"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	journal journaling.Journal,
	cashbackService cashback.CashbackService,
	fiscalService fiscal.FiscalIntegrator,
	authenticator authenticating.Authenticator,
	backupSyncService *scheduler.BackupSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BackupSyncService: backupSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.CashFlow(journal)...),
		router.WithRoutes(handler.Cashback(cashbackService)...),
		router.WithRoutes(handler.Fiscal(fiscalService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
