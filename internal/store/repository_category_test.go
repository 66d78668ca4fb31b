package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/jackc/pgerrcode"
)

const testCategoryID = "0190f1c2-0000-7000-8000-00000000c001"

var categoryRowColumns = []string{"id", "name", "description", "icon", "created_at", "updated_at"}

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return &categoryRepository{
		db:     &DB{DB: db, logger: l},
		ids:    fixedIDs{id: testCategoryID},
		logger: l,
	}, mock, db
}

func educationRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(categoryRowColumns).
		AddRow(testCategoryID, "Education", "Schools and books", "book.svg", now, now)
}

// ── CreateCategory ───────────────────────────────────────────────────────────

func TestCreateCategory_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(testCategoryID, "Education", "Schools and books", "book.svg").
		WillReturnRows(educationRow())

	created, err := repo.CreateCategory(context.Background(), models.Category{
		Name:        "Education",
		Description: "Schools and books",
		Icon:        "book.svg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != testCategoryID {
		t.Errorf("expected id %s, got %s", testCategoryID, created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateCategory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "duplicate name", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrCategoryAlreadyExists},
		{name: "unexpected", dbErr: errors.New("boom"), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCategoryRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO categories").WillReturnError(tt.dbErr)

			_, err := repo.CreateCategory(context.Background(), models.Category{Name: "Education"})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && !errors.Is(err, tt.dbErr) {
				t.Fatalf("expected the driver error to be wrapped, got %v", err)
			}
		})
	}
}

// ── FindCategoryByID ─────────────────────────────────────────────────────────

func TestFindCategoryByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM categories WHERE id = \$1`).
					WithArgs(testCategoryID).
					WillReturnRows(educationRow())
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM categories").
					WithArgs(testCategoryID).
					WillReturnRows(sqlmock.NewRows(categoryRowColumns))
			},
			wantErr: ErrCategoryNotFound,
		},
		{
			name: "malformed id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM categories").
					WithArgs(testCategoryID).
					WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))
			},
			wantErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCategoryRepo(t)
			defer db.Close()
			tt.setup(mock)

			found, err := repo.FindCategoryByID(context.Background(), testCategoryID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found.Name != "Education" {
				t.Errorf("expected Education, got %s", found.Name)
			}
		})
	}
}

// ── ListCategories ───────────────────────────────────────────────────────────

func TestListCategories_Success(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY name LIMIT \$1 OFFSET \$2`).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).
			AddRow("c6", "Health", "", "", now, now).
			AddRow("c7", "Sports", "", "", now, now))

	items, total, err := repo.ListCategories(context.Background(), models.Pagination{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 12 {
		t.Errorf("expected total 12, got %d", total)
	}
	if len(items) != 2 || items[0].Name != "Health" {
		t.Errorf("unexpected items: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListCategories_CountError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).
		WillReturnError(errors.New("down"))

	_, _, err := repo.ListCategories(context.Background(), models.Pagination{Page: 1, Limit: 10})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListCategories_ScanError(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))

	_, _, err := repo.ListCategories(context.Background(), models.Pagination{Page: 1, Limit: 10})
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

// ── UpdateCategory / DeleteCategory ──────────────────────────────────────────

func TestUpdateCategory(t *testing.T) {
	repo, mock, db := newTestCategoryRepo(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE categories SET name = \$2`).
		WithArgs(testCategoryID, "Education", "Schools and books", "book.svg").
		WillReturnRows(educationRow())
	mock.ExpectQuery("UPDATE categories").
		WithArgs("missing", "Other", "", "").
		WillReturnError(sql.ErrNoRows)

	updated, err := repo.UpdateCategory(context.Background(), models.Category{
		ID: testCategoryID, Name: "Education", Description: "Schools and books", Icon: "book.svg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != testCategoryID {
		t.Errorf("expected id %s, got %s", testCategoryID, updated.ID)
	}

	_, err = repo.UpdateCategory(context.Background(), models.Category{ID: "missing", Name: "Other"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
					WithArgs(testCategoryID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM categories").
					WithArgs(testCategoryID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrCategoryNotFound,
		},
		{
			name: "still referenced",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM categories").
					WithArgs(testCategoryID).
					WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrCategoryInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestCategoryRepo(t)
			defer db.Close()
			tt.setup(mock)

			err := repo.DeleteCategory(context.Background(), testCategoryID)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
