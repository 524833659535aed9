// Script de carga de dados de demonstração para um estabelecimento.
//
//	SEED_ESTABLISHMENT_ID=<uuid> go run ./infrastructure/migration/script
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	historyDays   = 60
	clientCount   = 25
	phoneDigits   = "0123456789"
	phoneLength   = 9
	maxSalesByDay = 4
)

var paymentMethods = []string{"pix", "dinheiro", "cartão de crédito", "cartão de débito"}

type seedService struct {
	Name     string
	Price    int64
	Duration int
}

var demoServices = []seedService{
	{Name: "Corte", Price: 45, Duration: 30},
	{Name: "Barba", Price: 30, Duration: 30},
	{Name: "Corte + Barba", Price: 70, Duration: 60},
	{Name: "Coloração", Price: 120, Duration: 90},
	{Name: "Escova", Price: 50, Duration: 45},
}

var demoNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela", "Henrique", "Isabela", "João",
	"Karina", "Lucas", "Mariana", "Nicolas", "Olívia", "Paulo", "Quésia", "Rafael", "Sofia", "Tiago",
	"Úrsula", "Vinícius", "Wesley", "Yasmin", "Zeca",
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga de demonstração...")
}

func generatePhone() string {
	digits, err := gonanoid.Generate(phoneDigits, phoneLength)
	if err != nil {
		return "11900000000"
	}
	return "11" + digits
}

func insertServices(ctx context.Context, tx *sql.Tx, establishmentID string) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0, len(demoServices))

	for _, s := range demoServices {
		query, args, err := squirrel.
			Insert("services").
			Columns("establishment_id", "name", "price", "duration_minutes", "active").
			Values(establishmentID, s.Name, decimal.NewFromInt(s.Price), s.Duration, true).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		service := &domain.Service{Name: s.Name, Price: decimal.NewFromInt(s.Price)}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&service.ID); err != nil {
			return nil, fmt.Errorf("erro ao inserir serviço %s: %w", s.Name, err)
		}
		services = append(services, service)
	}

	logrus.WithField("count", len(services)).Info("Serviços inseridos")
	return services, nil
}

func insertClients(ctx context.Context, tx *sql.Tx, establishmentID string, now time.Time, rng *rand.Rand) ([]string, error) {
	ids := make([]string, 0, clientCount)

	for i := 0; i < clientCount; i++ {
		birthDate := time.Date(1970+rng.IntN(35), time.Month(1+rng.IntN(12)), 1+rng.IntN(28), 0, 0, 0, 0, time.UTC)
		createdAt := now.AddDate(0, 0, -rng.IntN(historyDays*2))

		query, args, err := squirrel.
			Insert("clients").
			Columns("establishment_id", "name", "phone", "birth_date", "created_at").
			Values(establishmentID, demoNames[i%len(demoNames)], generatePhone(), birthDate, createdAt).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		var id string
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
		}
		ids = append(ids, id)
	}

	logrus.WithField("count", len(ids)).Info("Clientes inseridos")
	return ids, nil
}

func insertAppointment(ctx context.Context, tx *sql.Tx, establishmentID, clientID, serviceID string, at time.Time, status string) (string, error) {
	query, args, err := squirrel.
		Insert("appointments").
		Columns("establishment_id", "client_id", "service_id", "appointment_date", "status").
		Values(establishmentID, clientID, serviceID, at, status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("erro ao inserir agendamento: %w", err)
	}
	return id, nil
}

// insertHistory cria agendamentos e vendas dos últimos dias usando os mesmos repositórios da API
func insertHistory(
	ctx context.Context,
	tx *sql.Tx,
	establishmentID string,
	services []*domain.Service,
	clients []string,
	now time.Time,
	loc *time.Location,
	rng *rand.Rand,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
) (int, error) {
	salesCount := 0

	for day := historyDays; day >= 0; day-- {
		date := domain.StartOfDay(now, loc).AddDate(0, 0, -day)

		salesOfDay := rng.IntN(maxSalesByDay + 1)
		for i := 0; i < salesOfDay; i++ {
			service := services[rng.IntN(len(services))]
			clientID := clients[rng.IntN(len(clients))]
			at := date.Add(time.Duration(9+rng.IntN(10)) * time.Hour)

			if at.After(now) {
				continue
			}

			status := domain.AppointmentStatusScheduled
			switch rng.IntN(10) {
			case 0:
				status = domain.AppointmentStatusCanceled
			case 1:
				status = domain.AppointmentStatusNoShow
			}

			appointmentID, err := insertAppointment(ctx, tx, establishmentID, clientID, service.ID, at, status)
			if err != nil {
				return salesCount, err
			}

			if status != domain.AppointmentStatusScheduled {
				continue
			}

			paymentMethod := paymentMethods[rng.IntN(len(paymentMethods))]
			sale := &domain.Sale{
				EstablishmentID: establishmentID,
				ClientID:        clientID,
				ServiceID:       service.ID,
				AppointmentID:   &appointmentID,
				Amount:          service.Price,
				SaleDate:        at,
				PaymentMethod:   &paymentMethod,
			}

			if err := saleRepo.Create(ctx, tx, sale); err != nil {
				return salesCount, err
			}

			if err := clientRepo.AdvanceLastService(ctx, tx, establishmentID, clientID, at, sale.Amount); err != nil {
				return salesCount, err
			}

			salesCount++
		}
	}

	return salesCount, nil
}

func main() {
	setupLogger()

	establishmentID := os.Getenv("SEED_ESTABLISHMENT_ID")
	if establishmentID == "" {
		logrus.Fatal("SEED_ESTABLISHMENT_ID não informado")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)
	clientRepo := repository.NewClientRepository(conn)
	goalRepo := repository.NewGoalRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)

	loc := cfg.App.Location
	now := time.Now().In(loc)
	rng := rand.New(rand.NewPCG(uint64(now.Unix()), 42))
	startTime := time.Now()

	var salesCount int
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		services, err := insertServices(ctx, tx, establishmentID)
		if err != nil {
			return err
		}

		clients, err := insertClients(ctx, tx, establishmentID, now, rng)
		if err != nil {
			return err
		}

		salesCount, err = insertHistory(ctx, tx, establishmentID, services, clients, now, loc, rng, saleRepo, clientRepo)
		return err
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar histórico, transação desfeita")
	}

	goal := &domain.Goal{
		EstablishmentID: establishmentID,
		Month:           int(now.Month()),
		Year:            now.Year(),
		TargetAmount:    decimal.NewFromInt(8000),
	}
	if err := goalRepo.Upsert(ctx, goal); err != nil {
		logrus.WithError(err).Error("Erro ao salvar meta do mês")
	}

	settings := &domain.Settings{
		EstablishmentID:       establishmentID,
		InactiveDaysThreshold: cfg.Metrics.DefaultInactiveDays,
	}
	if err := settingsRepo.Upsert(ctx, settings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar configurações")
	}

	logrus.WithFields(logrus.Fields{
		"establishment_id": establishmentID,
		"sales":            salesCount,
		"duration":         time.Since(startTime).String(),
	}).Info("Carga de demonstração concluída")
}
