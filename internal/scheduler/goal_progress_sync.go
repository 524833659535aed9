package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// GoalProgressSyncService recalcula periodicamente o valor realizado das metas do mês corrente
type GoalProgressSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.GoalProgressSync
	location            *time.Location
	goalRepo            repository.GoalRepository
	saleRepo            repository.SaleRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncUpdated     int
	lastSyncFailed      int
}

func NewGoalProgressSyncService(
	goalRepo repository.GoalRepository,
	saleRepo repository.SaleRepository,
	appConfig *config.Config,
) *GoalProgressSyncService {
	loc := appConfig.App.Location
	if loc == nil {
		loc = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.GoalProgressSync.CronSchedule,
		"sync_enabled":  appConfig.GoalProgressSync.Enabled,
	}).Info("Configuração do agendador de progresso de metas carregada")

	return &GoalProgressSyncService{
		scheduler: gocron.NewScheduler(loc),
		config:    appConfig.GoalProgressSync,
		location:  loc,
		goalRepo:  goalRepo,
		saleRepo:  saleRepo,
		now:       time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando o contexto é cancelado
func (s *GoalProgressSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de progresso de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de progresso de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncGoalProgress(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de progresso de metas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de progresso de metas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *GoalProgressSyncService) syncGoalProgress(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de progresso de metas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	updated, failed := s.processCurrentMonth(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncUpdated = updated
	s.lastSyncFailed = failed
	s.syncMutex.Unlock()
}

// processCurrentMonth grava a soma das vendas do mês em cada meta; falhas de um estabelecimento não interrompem os demais
func (s *GoalProgressSyncService) processCurrentMonth(ctx context.Context) (int, int) {
	now := s.now().In(s.location)
	month := domain.MonthPeriod(now.Year(), now.Month(), s.location)

	goals, err := s.goalRepo.ListByMonth(ctx, int(now.Month()), now.Year())
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar metas para sincronização de progresso")
		return 0, 0
	}

	if len(goals) == 0 {
		logrus.Info("Nenhuma meta cadastrada para o mês corrente")
		return 0, 0
	}

	var updated, failed int
	for _, goal := range goals {
		if ctx.Err() != nil {
			logrus.Warn("Sincronização de progresso de metas interrompida")
			break
		}

		logger := logrus.WithFields(logrus.Fields{
			"establishment_id": goal.EstablishmentID,
			"goal_id":          goal.ID,
		})

		total, err := s.saleRepo.SumByPeriod(ctx, goal.EstablishmentID, month)
		if err != nil {
			logger.WithError(err).Error("Erro ao somar vendas do mês")
			failed++
			continue
		}

		if goal.CurrentAmount.Valid && goal.CurrentAmount.Decimal.Equal(total) {
			continue
		}

		if err := s.goalRepo.UpdateCurrentAmount(ctx, goal.ID, total); err != nil {
			logger.WithError(err).Error("Erro ao atualizar progresso da meta")
			failed++
			continue
		}

		updated++
	}

	logrus.WithFields(logrus.Fields{
		"goals":   len(goals),
		"updated": updated,
		"failed":  failed,
	}).Info("Sincronização de progresso de metas concluída")

	return updated, failed
}

// TriggerManualSync inicia manualmente uma sincronização em background
func (s *GoalProgressSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de progresso de metas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de progresso de metas")
	go s.syncGoalProgress(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *GoalProgressSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_updated":      s.lastSyncUpdated,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
