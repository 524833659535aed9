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
	"github.com/vfg2006/salon-manager-api/internal/api/handler"
	"github.com/vfg2006/salon-manager-api/internal/api/handler/router"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/booking"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/internal/usecases/records"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/internal/usecases/roster"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Metrics       metrics.Aggregator
	Reporter      reporting.Reporter
	Recorder      records.Recorder
	Booker        booking.Booker
	Roster        roster.Roster
	CronJobs      handler.CronJobServices
	Database      handler.Pinger
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services) http.Handler {
	loc := config.App.Location
	if loc == nil {
		loc = time.UTC
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Metrics(services.Metrics, loc)...),
		router.WithRoutes(handler.Reports(services.Reporter, loc)...),
		router.WithRoutes(handler.Records(services.Recorder)...),
		router.WithRoutes(handler.Roster(services.Roster, loc)...),
		router.WithRoutes(handler.PublicBooking(services.Booker)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
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

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
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
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
