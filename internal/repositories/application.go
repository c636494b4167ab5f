package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

const applicationColumns = `application_id, user_id, company_name, job_title, job_url,
	job_description, location, salary_min, salary_max, currency, job_type,
	remote_type, application_date, deadline, status, priority, notes,
	referral_name, contact_email, contact_person, created_at, updated_at`

// ApplicationReadRepository handles application read operations.
// Every query is scoped to the owning user, so foreign rows are
// indistinguishable from absent ones.
type ApplicationReadRepository struct {
	db *sqlx.DB
}

func NewApplicationReadRepository(db *sqlx.DB) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db}
}

// GetByID returns the application with the given ID owned by userID,
// or nil when absent.
func (r *ApplicationReadRepository) GetByID(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM job_applications
		WHERE application_id = $1 AND user_id = $2
	`, applicationColumns)

	var app models.ApplicationDB
	err := r.db.GetContext(ctx, &app, query, applicationID, userID)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{applicationID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &app, nil
}

// List returns the user's applications matching the filter, newest first.
func (r *ApplicationReadRepository) List(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) ([]models.ApplicationDB, error) {
	where, args := buildFilter(userID, filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM job_applications
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, applicationColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	apps := []models.ApplicationDB{}
	err := r.db.SelectContext(ctx, &apps, query, args...)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Count returns the number of the user's applications matching the filter.
func (r *ApplicationReadRepository) Count(ctx context.Context, userID uuid.UUID, filter models.ApplicationFilter) (int64, error) {
	where, args := buildFilter(userID, filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM job_applications WHERE %s`, where)

	var total int64
	err := r.db.GetContext(ctx, &total, query, args...)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

// CountByStatus returns the number of the user's applications per status.
func (r *ApplicationReadRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	const query = `
		SELECT status, COUNT(*) AS total
		FROM job_applications
		WHERE user_id = $1
		GROUP BY status
	`

	rows := []struct {
		Status string `db:"status"`
		Total  int64  `db:"total"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}

func buildFilter(userID uuid.UUID, filter models.ApplicationFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CompanyName != nil {
		args = append(args, "%"+*filter.CompanyName+"%")
		conds = append(conds, fmt.Sprintf("company_name ILIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// ApplicationWriteRepository handles application write operations.
// When a transaction is present in the context it is used instead of
// the pool connection.
type ApplicationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewApplicationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db, txGetter: txGetter}
}

func (r *ApplicationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new application and returns the stored record.
func (r *ApplicationWriteRepository) Save(ctx context.Context, app models.ApplicationDB) (*models.ApplicationDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO job_applications (
			user_id, company_name, job_title, job_url, job_description,
			location, salary_min, salary_max, currency, job_type, remote_type,
			application_date, deadline, status, priority, notes,
			referral_name, contact_email, contact_person, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
		RETURNING %s
	`, applicationColumns)

	args := []any{
		app.UserID, app.CompanyName, app.JobTitle, app.JobURL, app.JobDescription,
		app.Location, app.SalaryMin, app.SalaryMax, app.Currency, app.JobType,
		app.RemoteType, app.ApplicationDate, app.Deadline, app.Status,
		app.Priority, app.Notes, app.ReferralName, app.ContactEmail, app.ContactPerson,
	}

	var saved models.ApplicationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Update applies the non-nil fields of patch to the user's application
// and returns the updated record, or nil when the application does not
// exist or is not owned by userID.
func (r *ApplicationWriteRepository) Update(ctx context.Context, userID, applicationID uuid.UUID, patch models.ApplicationPatch) (*models.ApplicationDB, error) {
	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.CompanyName != nil {
		add("company_name", *patch.CompanyName)
	}
	if patch.JobTitle != nil {
		add("job_title", *patch.JobTitle)
	}
	if patch.JobURL != nil {
		add("job_url", *patch.JobURL)
	}
	if patch.JobDescription != nil {
		add("job_description", *patch.JobDescription)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.SalaryMin != nil {
		add("salary_min", *patch.SalaryMin)
	}
	if patch.SalaryMax != nil {
		add("salary_max", *patch.SalaryMax)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.JobType != nil {
		add("job_type", *patch.JobType)
	}
	if patch.RemoteType != nil {
		add("remote_type", *patch.RemoteType)
	}
	if patch.ApplicationDate != nil {
		add("application_date", *patch.ApplicationDate)
	}
	if patch.Deadline != nil {
		add("deadline", *patch.Deadline)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.ReferralName != nil {
		add("referral_name", *patch.ReferralName)
	}
	if patch.ContactEmail != nil {
		add("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPerson != nil {
		add("contact_person", *patch.ContactPerson)
	}

	if len(set) == 0 {
		return r.currentRow(ctx, userID, applicationID)
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, applicationID, userID)

	query := fmt.Sprintf(`
		UPDATE job_applications
		SET %s
		WHERE application_id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), len(args)-1, len(args), applicationColumns)

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &app, query, args...)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *ApplicationWriteRepository) currentRow(ctx context.Context, userID, applicationID uuid.UUID) (*models.ApplicationDB, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM job_applications WHERE application_id = $1 AND user_id = $2
	`, applicationColumns)

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &app, query, applicationID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes the user's application and reports whether a row was
// actually deleted.
func (r *ApplicationWriteRepository) Delete(ctx context.Context, userID, applicationID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM job_applications
		WHERE application_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, applicationID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{applicationID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
