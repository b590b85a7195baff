package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/siwes/interntrack/internal/pkg/email"
	"github.com/siwes/interntrack/internal/pkg/websocket"
)

// DefaultNotificationLimit caps notification listings
const DefaultNotificationLimit = 50

// Event is a notification intent emitted by a workflow transition.
// An event without RecipientID is delivered by email only.
type Event struct {
	ID             string
	RecipientID    int64
	RecipientEmail string
	RecipientName  string
	Kind           models.NotificationKind
	Title          string
	Message        string
}

// Notifier accepts notification intents without blocking the caller
type Notifier interface {
	Publish(event Event)
}

// Pusher delivers a message to a user's live connections
type Pusher interface {
	SendToUser(userID int64, msg *websocket.Message) bool
}

// NotificationConfig sizes the delivery queue
type NotificationConfig struct {
	QueueSize int
	Workers   int
}

// NotificationService persists, pushes and emails notifications on background workers
type NotificationService struct {
	store  repositories.NotificationStore
	users  repositories.UserStore
	pusher Pusher
	mailer email.EmailService
	logger zerolog.Logger
	now    func() time.Time

	queue   chan Event
	workers int
	wg      sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

var _ Notifier = (*NotificationService)(nil)

// NewNotificationService creates a new NotificationService. Call Start to run its workers.
func NewNotificationService(
	store repositories.NotificationStore,
	users repositories.UserStore,
	pusher Pusher,
	mailer email.EmailService,
	cfg NotificationConfig,
	logger zerolog.Logger,
) *NotificationService {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &NotificationService{
		store:   store,
		users:   users,
		pusher:  pusher,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
		queue:   make(chan Event, cfg.QueueSize),
		workers: cfg.Workers,
	}
}

// Start launches the delivery workers
func (s *NotificationService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.closed {
		return
	}
	s.started = true

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	s.logger.Info().Int("workers", s.workers).Int("queueSize", cap(s.queue)).Msg("Notification workers started")
}

// Publish queues an event. A full or closed queue drops the event with a log line.
func (s *NotificationService) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.logger.Warn().Str("kind", string(event.Kind)).Int64("recipientID", event.RecipientID).Msg("Notification dropped after shutdown")
		return
	}

	select {
	case s.queue <- event:
	default:
		s.logger.Error().Str("kind", string(event.Kind)).Int64("recipientID", event.RecipientID).Msg("Notification queue full, event dropped")
	}
}

// Close stops accepting events and waits for queued ones to be delivered or ctx to expire
func (s *NotificationService) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	started := s.started
	s.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("Notification queue drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notification queue not drained: %w", ctx.Err())
	}
}

func (s *NotificationService) worker() {
	defer s.wg.Done()
	for event := range s.queue {
		s.deliver(context.Background(), event)
	}
}

// deliver runs every channel for one event. Failures are logged and never returned.
func (s *NotificationService) deliver(ctx context.Context, event Event) {
	log := s.logger.With().Str("eventID", event.ID).Str("kind", string(event.Kind)).Int64("recipientID", event.RecipientID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Notification delivery panicked")
		}
	}()

	if event.RecipientID > 0 {
		notification := &models.Notification{
			EventID:     event.ID,
			RecipientID: event.RecipientID,
			Kind:        event.Kind,
			Title:       event.Title,
			Message:     event.Message,
			CreatedAt:   s.now(),
		}
		if err := s.store.CreateNotification(ctx, notification); err != nil {
			log.Error().Err(err).Msg("Failed to store notification")
		} else if s.pusher != nil {
			s.pusher.SendToUser(event.RecipientID, &websocket.Message{
				Type:      "notification",
				Data:      notification,
				Timestamp: notification.CreatedAt,
			})
		}

		if event.RecipientEmail == "" {
			user, err := s.users.GetUserByID(ctx, event.RecipientID)
			if err != nil {
				log.Warn().Err(err).Msg("Could not resolve notification recipient email")
			} else {
				event.RecipientEmail = user.Email
				event.RecipientName = user.FullName
			}
		}
	}

	if s.mailer == nil || event.RecipientEmail == "" {
		return
	}
	if err := s.mailer.Send(ctx, email.Message{
		ToEmail: event.RecipientEmail,
		ToName:  event.RecipientName,
		Subject: event.Title,
		Body:    event.Message,
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to send notification email")
	}
}

// ListNotifications returns the caller's most recent notifications
func (s *NotificationService) ListNotifications(ctx context.Context, id auth.Identity, limit int) ([]*models.Notification, error) {
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}
	notifications, err := s.store.ListNotifications(ctx, id.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, id auth.Identity, notificationID int64) error {
	if err := s.store.MarkRead(ctx, notificationID, id.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotificationNotFound) {
			return err
		}
		return fmt.Errorf("error marking notification read: %w", err)
	}
	return nil
}
