package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/infrastructure/database/postgres"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates/ratesclient"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/repository"
	"github.com/chasedndt/sneaker-inventory-api/internal/api"
	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/scheduler"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/aggregating"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/formatting"
	"github.com/sirupsen/logrus"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A persistência guarda apenas o cache de cotações; sem banco o serviço
	// continua operando com a tabela estática e o provedor
	var rateSnapshotRepo repository.RateSnapshotRepository
	if pgConn := pgconn(ctx, cfg.Database); pgConn != nil {
		defer pgConn.Close()
		rateSnapshotRepo = repository.NewRateSnapshotRepository(pgConn)
	}

	ratesClient := ratesclient.NewClient(cfg)
	ratesIntegrator := openrates.New(cfg, ratesClient)

	converterService := converting.NewService(cfg, ratesIntegrator, rateSnapshotRepo)
	aggregatorService := aggregating.NewService(cfg, converterService)
	formatter := formatting.NewFacade(cfg, converterService)

	rateSyncService := scheduler.NewRateSyncService(converterService, cfg)

	if err := rateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de cotações")
	} else {
		logrus.Info("Agendador de sincronização de cotações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		converterService,
		formatter,
		rateSyncService,
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

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados. Falha de conexão não é
// fatal: o serviço sobe sem persistência de cotações.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao PostgreSQL, seguindo sem persistência de cotações")
		return nil
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao testar conexão com PostgreSQL, seguindo sem persistência de cotações")
		conn.Close()
		return nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
