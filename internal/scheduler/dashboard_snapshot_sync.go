// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/design-online-api/infrastructure/repository"
	"github.com/vfg2006/design-online-api/internal/config"
	"github.com/vfg2006/design-online-api/internal/domain"
	"github.com/vfg2006/design-online-api/internal/usecases/dashboarding"
	"github.com/vfg2006/design-online-api/pkg/utils"
)

type SnapshotSyncConfig struct {
	CronSchedule      string
	Enabled           bool
	MaxConcurrentJobs int
	RetentionDays     int
}

// DashboardSnapshotSyncService aquece diariamente o cache de dashboards:
// um snapshot dos últimos 30 dias para "todos os clientes" e um por cliente
// conhecido, além de limpar snapshots antigos
type DashboardSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	dashboardService    dashboarding.Dashboarder
	publicationRepo     repository.PublicationRepository
	snapshotRepo        repository.DashboardSnapshotRepository
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSnapshotSyncService(
	dashboardService dashboarding.Dashboarder,
	publicationRepo repository.PublicationRepository,
	snapshotRepo repository.DashboardSnapshotRepository,
	cfg *config.Config,
) *DashboardSnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:      cfg.SnapshotSync.CronSchedule,
		Enabled:           cfg.SnapshotSync.Enabled,
		MaxConcurrentJobs: cfg.SnapshotSync.MaxConcurrentJobs,
		RetentionDays:     cfg.SnapshotSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSnapshotSyncService{
		scheduler:        scheduler,
		dashboardService: dashboardService,
		publicationRepo:  publicationRepo,
		snapshotRepo:     snapshotRepo,
		config:           syncConfig,
	}
}

func (s *DashboardSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshots do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshots computa e persiste os dashboards dos últimos 30 dias
func (s *DashboardSnapshotSyncService) SyncSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de snapshots já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando sincronização de snapshots do dashboard")

	clients, err := s.publicationRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes para a sincronização de snapshots")
		return err
	}

	warmed := s.warmSnapshots(clients, time.Now())

	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao limpar snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	logrus.WithFields(logrus.Fields{
		"clients":   len(clients),
		"snapshots": warmed,
	}).Info("Sincronização de snapshots do dashboard concluída")

	return nil
}

// warmSnapshots computa o dashboard dos últimos 30 dias para a visão geral
// e para cada cliente, com concorrência limitada. Retorna quantos snapshots
// foram computados com sucesso.
func (s *DashboardSnapshotSyncService) warmSnapshots(clients []string, now time.Time) int {
	startDate, endDate, err := utils.DateRangeFromPreset(utils.PresetLast30Days, now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao resolver o período dos snapshots")
		return 0
	}

	// nil primeiro: a visão "todos os clientes"
	targets := make([]*string, 0, len(clients)+1)
	targets = append(targets, nil)
	for _, client := range clients {
		client := client
		targets = append(targets, &client)
	}

	maxJobs := s.config.MaxConcurrentJobs
	if maxJobs < 1 {
		maxJobs = 1
	}

	wg := sync.WaitGroup{}
	jobs := make(chan *string, len(targets))
	warmed := make(chan struct{}, len(targets))

	for worker := 0; worker < maxJobs; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for client := range jobs {
				filters := &domain.DashboardFilters{
					StartDate:  &startDate,
					EndDate:    &endDate,
					ClientName: client,
				}

				if _, err := s.dashboardService.GetDashboard(filters); err != nil {
					clientLabel := "todos"
					if client != nil {
						clientLabel = *client
					}
					logrus.WithError(err).WithField("client", clientLabel).
						Error("Erro ao computar snapshot do dashboard")
					continue
				}

				warmed <- struct{}{}
			}
		}()
	}

	for _, target := range targets {
		jobs <- target
	}
	close(jobs)

	wg.Wait()
	close(warmed)

	return len(warmed)
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *DashboardSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots do dashboard")
	go s.SyncSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
