package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RateSyncConfig representa a configuração do agendador de cotações
type RateSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RateSyncService gerencia a atualização periódica do snapshot de cotações.
// A atualização delega ao conversor: um Refresh busca cotações novas no
// provedor e persiste o resultado, de modo que o cache raramente expira no
// meio de uma requisição de métricas.
type RateSyncService struct {
	scheduler           *gocron.Scheduler
	config              RateSyncConfig
	converter           converting.Converter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRateSyncService cria uma nova instância do serviço de sincronização de cotações
func NewRateSyncService(converter converting.Converter, appConfig *config.Config) *RateSyncService {
	syncConfig := RateSyncConfig{
		CronSchedule: appConfig.RateSync.CronSchedule,
		SyncEnabled:  appConfig.RateSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de cotações carregada")

	return &RateSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		converter:   converter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de cotações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de cotações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRates(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de cotações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de cotações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncRates força a renovação do snapshot de cotações
func (s *RateSyncService) syncRates(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de cotações")

	snapshot := s.converter.Refresh(ctx)

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"rate_count": len(snapshot.Rates),
		"fetched_at": snapshot.FetchedAt.Format(time.RFC3339),
		"duration":   time.Since(startTime).String(),
	}).Info("Sincronização de cotações concluída")
}

// TriggerManualSync inicia manualmente uma sincronização de cotações
func (s *RateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de cotações")
	go s.syncRates(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RateSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
