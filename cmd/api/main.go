package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/api"
	"github.com/vfg2006/salon-manager-api/internal/api/handler"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/scheduler"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/booking"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/internal/usecases/records"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/internal/usecases/roster"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.WithFields(logrus.Fields{
		"level":    logLevel.String(),
		"timezone": cfg.App.Location.String(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	bookingRepo := repository.NewBookingRepository(pgConn)
	professionalRepo := repository.NewProfessionalRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metricsService := metrics.NewService(cfg, saleRepo, clientRepo, serviceRepo, appointmentRepo, goalRepo, settingsRepo)
	reportingService := reporting.NewService(cfg, saleRepo, clientRepo, serviceRepo, appointmentRepo, goalRepo, settingsRepo)
	recordsService := records.NewService(cfg, pgConn, saleRepo, clientRepo, serviceRepo, goalRepo, settingsRepo)
	rosterService := roster.NewService(cfg, clientRepo, serviceRepo, professionalRepo, appointmentRepo, settingsRepo)

	bookingService, err := booking.NewService(cfg, bookingRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de agendamento inválida")
	}

	goalProgressSyncService := scheduler.NewGoalProgressSyncService(goalRepo, saleRepo, cfg)

	if err := goalProgressSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de progresso de metas")
	} else {
		logrus.Info("Agendador de progresso de metas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Metrics:       metricsService,
		Reporter:      reportingService,
		Recorder:      recordsService,
		Booker:        bookingService,
		Roster:        rosterService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeGoalProgress: goalProgressSyncService,
		},
		Database: pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
