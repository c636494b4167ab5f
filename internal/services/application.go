package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

// Error variables
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrEmptyUpdate         = errors.New("no fields provided for update")
)

// ApplicationReader defines read-only operations for job applications.
type ApplicationReader interface {
	GetByID(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationDB, error)
	List(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) ([]models.ApplicationDB, error)
	Count(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) (int64, error)
}

// ApplicationWriter defines write operations for job applications.
type ApplicationWriter interface {
	Save(ctx context.Context, app models.ApplicationDB) (*models.ApplicationDB, error)
	Update(ctx context.Context, userID, applicationID uuid.UUID, patch models.ApplicationPatch) (*models.ApplicationDB, error)
	Delete(ctx context.Context, userID, applicationID uuid.UUID) (bool, error)
}

// StatsReader provides per-status application counts. In production it
// is the Redis-backed facade wrapping the read repository.
type StatsReader interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

// EventPublisher publishes application lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ApplicationEvent) error
}

// ApplicationService implements owner-scoped CRUD over job applications.
type ApplicationService struct {
	reader ApplicationReader
	writer ApplicationWriter
	stats  StatsReader
	events EventPublisher
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(reader ApplicationReader, writer ApplicationWriter, stats StatsReader, events EventPublisher) *ApplicationService {
	return &ApplicationService{
		reader: reader,
		writer: writer,
		stats:  stats,
		events: events,
	}
}

// Create stores a new application for the given user, filling defaults
// for status, priority, and currency.
func (svc *ApplicationService) Create(ctx context.Context, userID uuid.UUID, app models.ApplicationDB) (*models.ApplicationDB, error) {
	app.UserID = userID
	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	if app.Priority == "" {
		app.Priority = models.PriorityMedium
	}
	if app.Currency == "" {
		app.Currency = "USD"
	}

	saved, err := svc.writer.Save(ctx, app)
	if err != nil {
		logger.Log.Errorw("failed to save application", "err", err)
		return nil, err
	}

	svc.publish(ctx, models.EventApplicationCreated, saved)

	return saved, nil
}

// List returns the user's applications matching the filter plus the
// total count for pagination.
func (svc *ApplicationService) List(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) ([]models.ApplicationDB, int64, error) {
	total, err := svc.reader.Count(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to count applications", "err", err)
		return nil, 0, err
	}

	apps, err := svc.reader.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "err", err)
		return nil, 0, err
	}

	return apps, total, nil
}

// Get returns a single application owned by the user.
func (svc *ApplicationService) Get(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationDB, error) {
	app, err := svc.reader.GetByID(ctx, userID, applicationID)
	if err != nil {
		logger.Log.Errorw("failed to get application", "err", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	return app, nil
}

// Update applies a partial update to the user's application.
func (svc *ApplicationService) Update(ctx context.Context, userID, applicationID uuid.UUID, patch models.ApplicationPatch) (*models.ApplicationDB, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	app, err := svc.writer.Update(ctx, userID, applicationID, patch)
	if err != nil {
		logger.Log.Errorw("failed to update application", "err", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	svc.publish(ctx, models.EventApplicationUpdated, app)

	return app, nil
}

// Delete removes the user's application.
func (svc *ApplicationService) Delete(ctx context.Context, userID, applicationID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, userID, applicationID)
	if err != nil {
		logger.Log.Errorw("failed to delete application", "err", err)
		return err
	}
	if !deleted {
		return ErrApplicationNotFound
	}

	err = svc.events.Publish(ctx, models.ApplicationEvent{
		Type:          models.EventApplicationDeleted,
		UserID:        userID,
		ApplicationID: applicationID,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to publish application event", "type", models.EventApplicationDeleted, "err", err)
	}

	return nil
}

// Stats returns the total and per-status application counts. Statuses
// with no applications are reported as zero.
func (svc *ApplicationService) Stats(ctx context.Context, userID uuid.UUID) (*models.ApplicationStats, error) {
	counts, err := svc.stats.CountByStatus(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count applications by status", "err", err)
		return nil, err
	}

	stats := &models.ApplicationStats{
		ByStatus: make(map[string]int64, len(models.ApplicationStatuses)),
	}
	for _, status := range models.ApplicationStatuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}

	return stats, nil
}

// publish emits a lifecycle event. Emission is best-effort: a broker
// failure must never fail the API request.
func (svc *ApplicationService) publish(ctx context.Context, eventType string, app *models.ApplicationDB) {
	err := svc.events.Publish(ctx, models.ApplicationEvent{
		Type:          eventType,
		UserID:        app.UserID,
		ApplicationID: app.ApplicationID,
		CompanyName:   app.CompanyName,
		JobTitle:      app.JobTitle,
		Status:        app.Status,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to publish application event", "type", eventType, "err", err)
	}
}
