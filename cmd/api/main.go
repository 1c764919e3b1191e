package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/tagmage/tagmage-api/infrastructure/database/postgres"
	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/internal/api"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/scheduler"
	"github.com/tagmage/tagmage-api/internal/usecases/account"
	"github.com/tagmage/tagmage-api/internal/usecases/insighting"
	"github.com/tagmage/tagmage-api/internal/usecases/syncing"
	"github.com/tagmage/tagmage-api/pkg/crypto"
	"github.com/tagmage/tagmage-api/pkg/log"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	encryptor, err := crypto.NewEncryptor(cfg.Encryption.Key)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a chave de cifragem de credenciais")
	}

	tenantRepo := repository.NewTenantRepository(pgConn)
	connectionRepo := repository.NewProviderConnectionRepository(pgConn)
	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)

	accountService := account.NewService(cfg, encryptor, connectionRepo, adAccountRepo, campaignRepo)
	syncService := syncing.NewService(cfg, encryptor, tenantRepo, connectionRepo, adAccountRepo, insightRepo)
	insightService := insighting.NewService(insightRepo)

	backfillSyncService := scheduler.NewBackfillSyncService(tenantRepo, insightRepo, syncService, cfg)

	if err := backfillSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backfill de insights")
	} else {
		logrus.Info("Agendador de backfill de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		syncService,
		insightService,
		backfillSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Setup()
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
