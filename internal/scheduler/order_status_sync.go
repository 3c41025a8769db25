package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
)

// OrderStatusSyncConfig representa a configuração do agendador de status de pedidos
type OrderStatusSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SyncSummary resume uma execução da sincronização
type SyncSummary struct {
	Orders  int `json:"orders"`
	Changed int `json:"changed"`
	Failed  int `json:"failed"`
}

// OrderStatusSyncService reconsulta periodicamente os POs abertos do diário
type OrderStatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrderStatusSyncConfig
	orderService        ordering.Orderer
	ctx                 context.Context
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

func NewOrderStatusSyncService(orderService ordering.Orderer, appConfig *config.Config) *OrderStatusSyncService {
	syncConfig := OrderStatusSyncConfig{
		CronSchedule:        appConfig.OrderStatusSync.CronSchedule,
		LookbackDays:        appConfig.OrderStatusSync.LookbackDays,
		RequestDelaySeconds: appConfig.OrderStatusSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.OrderStatusSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.OrderStatusSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de status de pedidos carregada")

	return &OrderStatusSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		orderService: orderService,
		ctx:          context.Background(),
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *OrderStatusSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de status de pedidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOpenOrders(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de status de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOpenOrders reconsulta os POs abertos dentro da janela configurada.
// Devolve false quando outra execução já está em andamento.
func (s *OrderStatusSyncService) syncOpenOrders(ctx context.Context) (SyncSummary, bool) {
	s.syncMutex.Lock()
	startTime, ok := s.beginLocked()
	s.syncMutex.Unlock()

	if !ok {
		logrus.Info("Sincronização de status de pedidos já em andamento, ignorando")
		return SyncSummary{}, false
	}

	return s.run(ctx, startTime), true
}

// beginLocked marca a execução como em andamento; exige syncMutex
func (s *OrderStatusSyncService) beginLocked() (time.Time, bool) {
	if s.syncRunning {
		return time.Time{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return s.lastSyncStartedAt, true
}

// run executa uma sincronização já marcada por beginLocked
func (s *OrderStatusSyncService) run(ctx context.Context, startTime time.Time) SyncSummary {
	summary := SyncSummary{}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	filter := domain.ListPurchaseOrdersFilter{}
	if s.config.LookbackDays > 0 {
		filter.Since = startTime.AddDate(0, 0, -s.config.LookbackDays)
	}

	records, err := s.orderService.ListOpenOrders(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos abertos para sincronização")
		return summary
	}

	if len(records) == 0 {
		logrus.Info("Nenhum pedido aberto para sincronização")
		s.markCompleted()
		return summary
	}

	summary = s.processOrders(ctx, records)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"orders":   summary.Orders,
		"changed":  summary.Changed,
		"failed":   summary.Failed,
	}).Info("Sincronização de status de pedidos concluída")

	s.markCompleted()
	return summary
}

func (s *OrderStatusSyncService) markCompleted() {
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// processOrders distribui os pedidos entre no máximo MaxConcurrentJobs workers
func (s *OrderStatusSyncService) processOrders(ctx context.Context, records []*domain.PurchaseOrderRecord) SyncSummary {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg      sync.WaitGroup
		changed atomic.Int64
		failed  atomic.Int64
	)

	for _, record := range records {
		if ctx.Err() != nil {
			logrus.Warn("Sincronização interrompida pelo cancelamento do contexto")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(rec *domain.PurchaseOrderRecord) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			statusChanged, err := s.orderService.RefreshOrderStatus(ctx, rec)
			if err != nil {
				failed.Add(1)
				logrus.WithFields(logrus.Fields{
					"po_number": rec.PONumber,
					"error":     err.Error(),
				}).Error("Erro ao atualizar status do pedido")
			} else if statusChanged {
				changed.Add(1)
				logrus.WithFields(logrus.Fields{
					"po_number": rec.PONumber,
					"status":    rec.StatusCode,
					"state":     rec.State,
				}).Info("Status do pedido alterado")
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(record)
	}

	wg.Wait()

	return SyncSummary{
		Orders:  len(records),
		Changed: int(changed.Load()),
		Failed:  int(failed.Load()),
	}
}

// TriggerManualSync inicia manualmente uma sincronização e informa se ela foi aceita
func (s *OrderStatusSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	startTime, ok := s.beginLocked()
	ctx := s.ctx
	s.syncMutex.Unlock()

	if !ok {
		logrus.Info("Sincronização de status de pedidos já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de status de pedidos")
	go s.run(ctx, startTime)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *OrderStatusSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
