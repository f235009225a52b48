package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/travel_safety_monitor/internal/service"
	"github.com/sirupsen/logrus"
)

// EscalationScheduler периодически переводит просроченные активные оповещения
// в статус escalated. Таймер эскалации работает независимо от успеха доставки
// уведомлений.
type EscalationScheduler struct {
	cron   *cron.Cron
	safety service.SafetyService
	logger *logrus.Logger
	spec   string
}

// NewEscalationScheduler создает новый планировщик эскалации.
// spec задается в формате cron (например "@every 1m").
func NewEscalationScheduler(safety service.SafetyService, logger *logrus.Logger, spec string) *EscalationScheduler {
	return &EscalationScheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		safety: safety,
		logger: logger,
		spec:   spec,
	}
}

// Start регистрирует задачу и запускает планировщик
func (s *EscalationScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		count, err := s.safety.EscalateOverdueAlerts(ctx)
		if err != nil {
			s.logger.WithError(err).Error("Escalation sweep failed")
			return
		}
		if count > 0 {
			s.logger.WithField("count", count).Info("Escalation sweep completed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.WithField("spec", s.spec).Info("Escalation scheduler started")
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущей задачи
func (s *EscalationScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Escalation scheduler stopped")
}
