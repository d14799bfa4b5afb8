package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repositorymocks "github.com/vfg2006/design-online-api/infrastructure/repository/mocks"
	"github.com/vfg2006/design-online-api/internal/config"
	"github.com/vfg2006/design-online-api/internal/domain"
	dashboardingmocks "github.com/vfg2006/design-online-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func testSyncConfig() *config.Config {
	return &config.Config{
		SnapshotSync: config.SnapshotSync{
			CronSchedule:      "0 5 * * *",
			Enabled:           true,
			MaxConcurrentJobs: 2,
			RetentionDays:     90,
		},
	}
}

func TestSyncSnapshots(t *testing.T) {
	t.Run("Aquece um snapshot por cliente mais a visão geral e limpa os antigos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dashboardService := dashboardingmocks.NewMockDashboarder(ctrl)
		publicationRepo := repositorymocks.NewMockPublicationRepository(ctrl)
		snapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

		clients := []string{"clientA", "clientB", "clientC"}

		publicationRepo.EXPECT().
			ListClients().
			Return(clients, nil)
		dashboardService.EXPECT().
			GetDashboard(gomock.Any()).
			Return(&domain.DashboardResponse{}, nil).
			Times(len(clients) + 1) // Visão geral mais um por cliente
		snapshotRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(2), nil)

		service := NewDashboardSnapshotSyncService(
			dashboardService,
			publicationRepo,
			snapshotRepo,
			testSyncConfig(),
		)

		err := service.SyncSnapshots()

		assert.NoError(t, err)
		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha ao listar clientes interrompe a sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dashboardService := dashboardingmocks.NewMockDashboarder(ctrl)
		publicationRepo := repositorymocks.NewMockPublicationRepository(ctrl)
		snapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

		publicationRepo.EXPECT().
			ListClients().
			Return(nil, errors.New("connection refused"))

		service := NewDashboardSnapshotSyncService(
			dashboardService,
			publicationRepo,
			snapshotRepo,
			testSyncConfig(),
		)

		err := service.SyncSnapshots()

		assert.Error(t, err)
	})

	t.Run("Falha em um cliente não impede os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dashboardService := dashboardingmocks.NewMockDashboarder(ctrl)
		publicationRepo := repositorymocks.NewMockPublicationRepository(ctrl)
		snapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

		clients := []string{"clientA", "clientB"}

		publicationRepo.EXPECT().
			ListClients().
			Return(clients, nil)

		failed := false
		dashboardService.EXPECT().
			GetDashboard(gomock.Any()).
			DoAndReturn(func(filters *domain.DashboardFilters) (*domain.DashboardResponse, error) {
				if filters.ClientName != nil && *filters.ClientName == "clientA" {
					failed = true
					return nil, errors.New("timeout")
				}
				return &domain.DashboardResponse{}, nil
			}).
			Times(len(clients) + 1)
		snapshotRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(0), nil)

		service := NewDashboardSnapshotSyncService(
			dashboardService,
			publicationRepo,
			snapshotRepo,
			testSyncConfig(),
		)

		err := service.SyncSnapshots()

		assert.NoError(t, err)
		assert.True(t, failed)
	})

	t.Run("Retenção zero não dispara a limpeza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dashboardService := dashboardingmocks.NewMockDashboarder(ctrl)
		publicationRepo := repositorymocks.NewMockPublicationRepository(ctrl)
		snapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

		cfg := testSyncConfig()
		cfg.SnapshotSync.RetentionDays = 0

		publicationRepo.EXPECT().
			ListClients().
			Return([]string{}, nil)
		dashboardService.EXPECT().
			GetDashboard(gomock.Any()).
			Return(&domain.DashboardResponse{}, nil)

		service := NewDashboardSnapshotSyncService(
			dashboardService,
			publicationRepo,
			snapshotRepo,
			cfg,
		)

		err := service.SyncSnapshots()

		assert.NoError(t, err)
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("Expõe a configuração e os horários da última sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewDashboardSnapshotSyncService(
			dashboardingmocks.NewMockDashboarder(ctrl),
			repositorymocks.NewMockPublicationRepository(ctrl),
			repositorymocks.NewMockDashboardSnapshotRepository(ctrl),
			testSyncConfig(),
		)

		status := service.GetStatus()

		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 5 * * *", status["sync_cron"])
	})
}
