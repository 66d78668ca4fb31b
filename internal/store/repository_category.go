package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/jackc/pgerrcode"
)

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

func NewCategoryRepository(db *DB, ids IDGenerator, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	row := r.db.QueryRowContext(ctx, createCategory, r.ids.Generate(), category.Name, category.Description, category.Icon)

	created, err := scanCategory(row)
	if err != nil {
		return models.Category{}, r.mapError(ctx, "*categoryRepository.CreateCategory", err)
	}

	return created, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, id string) (models.Category, error) {
	found, err := scanCategory(r.db.QueryRowContext(ctx, findCategoryByID, id))
	if err != nil {
		return models.Category{}, r.mapError(ctx, "*categoryRepository.FindCategoryByID", err)
	}

	return found, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, page models.Pagination) ([]models.Category, int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countCategories).Scan(&total); err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error counting categories")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listCategories, page.Limit, page.Offset())
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error listing categories")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, page.Limit)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, total, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	row := r.db.QueryRowContext(ctx, updateCategory, category.ID, category.Name, category.Description, category.Icon)

	updated, err := scanCategory(row)
	if err != nil {
		return models.Category{}, r.mapError(ctx, "*categoryRepository.UpdateCategory", err)
	}

	return updated, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		return r.mapError(ctx, "*categoryRepository.DeleteCategory", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) mapError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCategoryNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("category query failed")

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrCategoryAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrCategoryInUse
	case pgerrcode.InvalidTextRepresentation:
		return ErrCategoryNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanCategory(row *sql.Row) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
