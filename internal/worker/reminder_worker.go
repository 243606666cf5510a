package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/grooming-service/internal/events"
	"github.com/spec-kit/grooming-service/internal/repository"
	"github.com/spec-kit/grooming-service/internal/schedule"
)

// slotTimeLayout matches the canonical stored slot form, trailing space included.
const slotTimeLayout = "15:04:05 "

// Window is the half-open clock range a sweep tick covers on tomorrow's date.
// The source system matched the stored time string against the wall clock at
// exact second granularity, which almost never fires; sweeping a window means
// every next-day appointment is picked up by exactly one tick.
type Window struct {
	Date time.Time
	From string
	To   string
}

// SweepWindow computes the window for a tick that last ran at prev and runs
// now. Crossing midnight resets the lower bound so early slots are not skipped.
func SweepWindow(prev, now time.Time) Window {
	from := prev.Format(slotTimeLayout)
	if prev.Day() != now.Day() {
		from = "00:00:00 "
	}
	return Window{
		Date: now.AddDate(0, 0, 1),
		From: from,
		To:   now.Format(slotTimeLayout),
	}
}

// ReminderWorker periodically sweeps for appointments one day out and emits a
// reminder event per match. It runs out-of-band from request handling.
type ReminderWorker struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	interval     time.Duration
	now          func() time.Time
}

// NewReminderWorker constructs the worker.
func NewReminderWorker(appointments repository.AppointmentRepository, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger, interval time.Duration) *ReminderWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderWorker{
		appointments: appointments,
		users:        users,
		dispatcher:   dispatcher,
		logger:       logger,
		interval:     interval,
		now:          time.Now,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (w *ReminderWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.now()
			if err := w.sweep(ctx, SweepWindow(prev, now)); err != nil {
				w.logger.Error("reminder sweep failed", zap.Error(err))
			}
			prev = now
		}
	}
}

func (w *ReminderWorker) sweep(ctx context.Context, win Window) error {
	appointments, err := w.appointments.ListByDateTimeWindow(ctx, win.Date, win.From, win.To)
	if err != nil {
		return err
	}

	for _, appointment := range appointments {
		user, err := w.users.GetByID(ctx, appointment.UserID)
		if err != nil {
			if err == pgx.ErrNoRows {
				continue
			}
			return err
		}
		_ = w.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReminderDue,
			Timestamp: w.now(),
			Payload: events.ReminderDuePayload{
				AppointmentID: appointment.ID,
				UserID:        user.ID,
				Email:         user.Email,
				Date:          appointment.Date.Format(schedule.DateLayout),
				Time:          appointment.Time,
			},
		})
	}
	if len(appointments) > 0 {
		w.logger.Info("reminder sweep matched appointments", zap.Int("count", len(appointments)))
	}
	return nil
}
