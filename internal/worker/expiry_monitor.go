package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/metrics"
)

// ExpiryMonitor фоновый монитор истечения сессий
//
// Работает на двух независимых интервалах:
//   - refreshInterval: перечитывает снимок бронирований из хранилища
//   - tickInterval: пересчитывает таймеры по последнему снимку без I/O
//
// Пересчёт на тике дешёвый и не трогает БД: между обновлениями снимка
// секундные таймеры живут на данных в памяти
type ExpiryMonitor struct {
	repo         BookingRepository
	sweep        SweepUseCase
	metrics      *metrics.Metrics
	timeProvider TimeProvider
	logger       Logger

	refreshInterval time.Duration
	tickInterval    time.Duration
	warnWindow      time.Duration

	mu       sync.RWMutex
	snapshot []*domain.Booking

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
}

// Counts агрегаты по снимку на момент пересчёта
type Counts struct {
	Active        int
	Archived      int
	Expired       int
	NearingExpiry int
}

// NewExpiryMonitor создает монитор. sweep == nil отключает автоархивацию:
// тогда монитор только следит за снимком и метриками
func NewExpiryMonitor(
	repo BookingRepository,
	sweep SweepUseCase,
	m *metrics.Metrics,
	refreshInterval, tickInterval, warnWindow time.Duration,
	logger Logger,
) *ExpiryMonitor {
	return &ExpiryMonitor{
		repo:            repo,
		sweep:           sweep,
		metrics:         m,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		refreshInterval: refreshInterval,
		tickInterval:    tickInterval,
		warnWindow:      warnWindow,
		stopCh:          make(chan struct{}),
		doneCh:          make(chan struct{}),
	}
}

// Start запускает фоновый цикл. Повторный вызов игнорируется
func (em *ExpiryMonitor) Start(ctx context.Context) {
	if em.started {
		return
	}
	em.started = true

	em.refresh(ctx)

	go em.run(ctx)
	em.logger.Info("ExpiryMonitor: started, refresh=%s tick=%s warn_window=%s",
		em.refreshInterval, em.tickInterval, em.warnWindow)
}

// Stop останавливает цикл и дожидается его завершения
func (em *ExpiryMonitor) Stop() {
	if !em.started {
		return
	}
	close(em.stopCh)
	<-em.doneCh
	em.logger.Info("ExpiryMonitor: stopped")
}

func (em *ExpiryMonitor) run(ctx context.Context) {
	defer close(em.doneCh)

	refreshTicker := time.NewTicker(em.refreshInterval)
	defer refreshTicker.Stop()

	tickTicker := time.NewTicker(em.tickInterval)
	defer tickTicker.Stop()

	for {
		select {
		case <-em.stopCh:
			return
		case <-ctx.Done():
			return
		case <-refreshTicker.C:
			em.refresh(ctx)
		case <-tickTicker.C:
			em.tick()
		}
	}
}

// refresh перечитывает снимок из хранилища и при включённой автоархивации
// запускает проход очистки
func (em *ExpiryMonitor) refresh(ctx context.Context) {
	bookings, err := em.repo.GetAll(ctx)
	if err != nil {
		// Старый снимок остаётся действующим до следующего удачного чтения
		em.logger.Warn("ExpiryMonitor: snapshot refresh failed: %v", err)
		return
	}

	em.mu.Lock()
	em.snapshot = bookings
	em.mu.Unlock()

	counts := em.tick()

	if em.sweep != nil && counts.Expired > 0 {
		em.runSweep(ctx)
	}
}

// tick пересчитывает агрегаты по последнему снимку и обновляет gauge метрики
func (em *ExpiryMonitor) tick() Counts {
	em.mu.RLock()
	snapshot := em.snapshot
	em.mu.RUnlock()

	now := em.timeProvider.Now()
	counts := CountBookings(snapshot, now, em.warnWindow)

	if em.metrics != nil {
		svc := em.metrics.Service()
		em.metrics.BookingsActive.WithLabelValues(svc).Set(float64(counts.Active))
		em.metrics.BookingsArchived.WithLabelValues(svc).Set(float64(counts.Archived))
		em.metrics.BookingsExpired.WithLabelValues(svc).Set(float64(counts.Expired))
		em.metrics.BookingsNearingExpiry.WithLabelValues(svc).Set(float64(counts.NearingExpiry))
	}

	return counts
}

func (em *ExpiryMonitor) runSweep(ctx context.Context) {
	result, err := em.sweep.Execute(ctx)
	if err != nil {
		em.logger.Error("ExpiryMonitor: auto sweep failed: %v", err)
		return
	}

	if em.metrics != nil {
		svc := em.metrics.Service()
		em.metrics.SweepArchivedTotal.WithLabelValues(svc).Add(float64(len(result.ArchivedIDs)))
		em.metrics.SweepFailuresTotal.WithLabelValues(svc).Add(float64(len(result.Failed)))
	}

	if len(result.ArchivedIDs) > 0 || len(result.Failed) > 0 {
		em.logger.Info("ExpiryMonitor: auto sweep archived=%d failed=%d",
			len(result.ArchivedIDs), len(result.Failed))
	}
}

// CountBookings считает агрегаты по снимку на момент now
//
// Запись с нулевым created_at или неположительной длительностью не имеет
// точки истечения и учитывается только в active/archived
func CountBookings(bookings []*domain.Booking, now time.Time, warnWindow time.Duration) Counts {
	var counts Counts

	for _, b := range bookings {
		if b == nil {
			continue
		}
		if b.IsArchived {
			counts.Archived++
			continue
		}
		counts.Active++

		if !b.HasValidStart() || !b.TimeSlot.IsPositive() {
			continue
		}

		cd := domain.NewCountdown(b, now, warnWindow)
		switch {
		case cd.Expired:
			counts.Expired++
		case cd.NearingExpiry:
			counts.NearingExpiry++
		}
	}

	return counts
}
