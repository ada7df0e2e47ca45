package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHistory возвращает агрегированную историю завершенных заказов клиента,
// найденного по email (без учета регистра) или телефону
// Если найдено несколько клиентов, берется клиент с наибольшей выручкой
func (r *Repository) GetHistory(ctx context.Context, businessID int64, email, phone *string) (*domain.CustomerHistory, error) {
	identity, err := identityFilter("c.", email, phone)
	if err != nil {
		return nil, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"COUNT(j.id)",
		"COALESCE(SUM(j.total_price), 0)",
	).
		From("customers c").
		LeftJoin("jobs j ON j.customer_id = c.id AND j.status = ?", domain.JobStatusCompleted).
		Where(squirrel.Eq{"c.business_id": businessID}).
		Where(identity).
		GroupBy("c.id").
		OrderBy("COALESCE(SUM(j.total_price), 0) DESC", "c.id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - build select query: %v", ErrBuildQuery, err)
	}

	var history domain.CustomerHistory
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&history.CustomerID,
		&history.CompletedJobs,
		&history.CompletedValue,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - scan history: %w", ErrScanRow, err)
	}

	return &history, nil
}

// FindOrCreate находит клиента по email или телефону, иначе создает нового
func (r *Repository) FindOrCreate(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	identity, err := identityFilter("", customer.Email, customer.Phone)
	if err != nil {
		return nil, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "business_id", "name", "email", "phone").
		From("customers").
		Where(squirrel.Eq{"business_id": customer.BusinessID}).
		Where(identity).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build select query: %v", ErrBuildQuery, err)
	}

	var found domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&found.ID,
		&found.BusinessID,
		&found.Name,
		&found.Email,
		&found.Phone,
	)
	if err == nil {
		return &found, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: FindOrCreate - scan customer: %w", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Insert("customers").
		Columns("business_id", "name", "email", "phone").
		Values(customer.BusinessID, customer.Name, normalizeEmail(customer.Email), normalizePhone(customer.Phone)).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID); err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - execute insert: %w", ErrExecQuery, err)
	}
	customer.Email = normalizeEmail(customer.Email)
	customer.Phone = normalizePhone(customer.Phone)

	return customer, nil
}

// identityFilter условие поиска клиента по email или телефону
func identityFilter(prefix string, email, phone *string) (squirrel.Sqlizer, error) {
	or := squirrel.Or{}

	if e := normalizeEmail(email); e != nil {
		or = append(or, squirrel.Expr("LOWER("+prefix+"email) = ?", *e))
	}
	if p := normalizePhone(phone); p != nil {
		or = append(or, squirrel.Eq{prefix + "phone": *p})
	}

	if len(or) == 0 {
		return nil, ErrEmptyIdentity
	}
	return or, nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}
