package doctor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	"github.com/m04kA/SMC-DoctorService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DoctorService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

var doctorColumns = []string{
	"doctor_id",
	"name",
	"email",
	"phone",
	"department",
	"specialization",
	"created_at",
}

// Repository репозиторий для работы с врачами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового врача
// doctor_id и created_at генерируются базой данных.
// Нарушение уникальности e-mail (constraint doctors_email_unique)
// маппится в ErrDuplicateEmail, основная проверка выполняется
// в usecase внутри транзакции.
func (r *Repository) Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"name",
			"email",
			"phone",
			"department",
			"specialization",
		).
		Values(
			doctor.Name,
			doctor.Email,
			doctor.Phone,
			doctor.Department,
			doctor.Specialization,
		).
		Suffix("RETURNING doctor_id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&doctor.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	doctor.CreatedAt = createdAt.Time

	return doctor, nil
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"doctor_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDoctor(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// FindByEmail получает врача по e-mail
// Используется usecase создания врача для проверки уникальности
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDoctor(executor.QueryRowContext(ctx, query, args...), "FindByEmail")
}

// List получает страницу врачей с фильтрацией
// Фильтры по отделению и специализации объединяются по AND,
// порядок выборки - по возрастанию doctor_id (порядок вставки)
func (r *Repository) List(ctx context.Context, filter domain.DoctorFilter) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("doctor_id ASC").
		Offset(uint64(filter.Skip)).
		Limit(uint64(filter.Limit))

	selectBuilder = applyFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDoctors(rows)
}

// Count возвращает общее количество врачей, подходящих под фильтр
// Результат не зависит от пагинации
func (r *Repository) Count(ctx context.Context, filter domain.DoctorFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("doctors")
	selectBuilder = applyFilter(selectBuilder, filter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// applyFilter добавляет условия фильтрации по отделению и специализации
func applyFilter(builder squirrel.SelectBuilder, filter domain.DoctorFilter) squirrel.SelectBuilder {
	if filter.Department != nil {
		builder = builder.Where(squirrel.Eq{"department": *filter.Department})
	}
	if filter.Specialization != nil {
		builder = builder.Where(squirrel.Eq{"specialization": *filter.Specialization})
	}
	return builder
}

// scanDoctor сканирует одну строку результата в доменную модель
func (r *Repository) scanDoctor(row *sql.Row, method string) (*domain.Doctor, error) {
	var doctor domain.Doctor
	var createdAt sql.NullTime

	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Email,
		&doctor.Phone,
		&doctor.Department,
		&doctor.Specialization,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan doctor: %v", ErrScanRow, method, err)
	}

	doctor.CreatedAt = createdAt.Time

	return &doctor, nil
}

// scanDoctors сканирует результаты запроса в слайс врачей
func (r *Repository) scanDoctors(rows *sql.Rows) ([]*domain.Doctor, error) {
	doctors := make([]*domain.Doctor, 0)

	for rows.Next() {
		var doctor domain.Doctor
		var createdAt sql.NullTime

		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Email,
			&doctor.Phone,
			&doctor.Department,
			&doctor.Specialization,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDoctors - scan row: %v", ErrScanRow, err)
		}

		doctor.CreatedAt = createdAt.Time

		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDoctors - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}
