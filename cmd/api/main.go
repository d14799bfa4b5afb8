package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/design-online-api/infrastructure/database/postgres"
	"github.com/vfg2006/design-online-api/infrastructure/repository"
	"github.com/vfg2006/design-online-api/internal/api"
	"github.com/vfg2006/design-online-api/internal/config"
	"github.com/vfg2006/design-online-api/internal/scheduler"
	"github.com/vfg2006/design-online-api/internal/usecases/dashboarding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	publicationRepo := repository.NewPublicationRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	// Inicializa o serviço de dashboard com suporte a snapshots
	dashboardService := dashboarding.NewService(cfg, publicationRepo)
	cachedDashboardService := dashboardService.(*dashboarding.Service).WithSnapshots(snapshotRepo)

	snapshotSyncService := scheduler.NewDashboardSnapshotSyncService(
		cachedDashboardService,
		publicationRepo,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedDashboardService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
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
