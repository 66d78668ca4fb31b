package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const testUserID = "0190f1c2-7a3b-7c4d-8e5f-0123456789ab"

var userRowColumns = []string{
	"id", "full_name", "username", "email", "password_hash", "role",
	"is_active", "activation_code", "profile_picture", "created_at",
}

type stubCodec struct {
	transformErr error
}

func (c stubCodec) Transform(plaintext string) (string, error) {
	if c.transformErr != nil {
		return "", c.transformErr
	}
	return "digest(" + plaintext + ")", nil
}

func (c stubCodec) DeriveActivationCode(id string) string {
	return "code(" + id + ")"
}

type fixedIDs struct{ id string }

func (g fixedIDs) Generate() string { return g.id }

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	return newTestUserRepoWithCodec(t, stubCodec{})
}

func newTestUserRepoWithCodec(t *testing.T, codec CredentialEncoder) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		codec:  codec,
		ids:    fixedIDs{id: testUserID},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func aliceRow(active bool) *sqlmock.Rows {
	return sqlmock.NewRows(userRowColumns).AddRow(
		testUserID, "Alice Doe", "alice", "a@x.io", "digest(Passw0rd)", "fundraiser",
		active, "code("+testUserID+")", models.DefaultProfilePicture, time.Now(),
	)
}

func aliceCandidate() models.NewUser {
	return models.NewUser{
		FullName: "Alice Doe",
		Username: "alice",
		Email:    "a@x.io",
		Password: "Passw0rd",
		Role:     models.RoleFundraiser,
		IsActive: true,
	}
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testUserID, "Alice Doe", "alice", "a@x.io", "digest(Passw0rd)",
			models.RoleFundraiser, true, "code("+testUserID+")", models.DefaultProfilePicture).
		WillReturnRows(aliceRow(true))

	created, err := repo.CreateUser(context.Background(), aliceCandidate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != testUserID {
		t.Errorf("expected id %s, got %s", testUserID, created.ID)
	}
	if created.PasswordHash == "Passw0rd" {
		t.Error("stored password must not be the plaintext")
	}
	if created.Role != models.RoleFundraiser || !created.IsActive {
		t.Errorf("unexpected role/active: %s/%v", created.Role, created.IsActive)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		wantField  string
	}{
		{constraint: "users_username_key", wantField: "username"},
		{constraint: "users_email_key", wantField: "email"},
		{constraint: "", wantField: "username or email"},
	}

	for _, tt := range tests {
		t.Run(tt.wantField, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), aliceCandidate())
			if !errors.Is(err, ErrUserAlreadyExists) {
				t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
			}
			if !strings.HasSuffix(err.Error(), tt.wantField) {
				t.Errorf("expected error to name %q, got %q", tt.wantField, err.Error())
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), aliceCandidate())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_TransformError(t *testing.T) {
	repo, mock, db := newTestUserRepoWithCodec(t, stubCodec{transformErr: errors.New("too long")})
	defer db.Close()

	_, err := repo.CreateUser(context.Background(), aliceCandidate())
	if err == nil {
		t.Fatal("expected transform error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query must run when the password cannot be transformed: %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(testUserID)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), aliceCandidate())
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

// ── FindUserByIdentifier ─────────────────────────────────────────────────────

func TestFindUserByIdentifier_Success(t *testing.T) {
	for _, identifier := range []string{"alice", "a@x.io"} {
		t.Run(identifier, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1 OR email = \$1 ORDER BY \(username = \$1\) DESC`).
				WithArgs(identifier).
				WillReturnRows(aliceRow(true))

			found, err := repo.FindUserByIdentifier(context.Background(), identifier)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found.Username != "alice" {
				t.Errorf("expected username alice, got %s", found.Username)
			}
		})
	}
}

func TestFindUserByIdentifier_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByIdentifier(context.Background(), "bob")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByIdentifier_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByIdentifier(context.Background(), "alice")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

// ── FindUserByID ─────────────────────────────────────────────────────────────

func TestFindUserByID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(aliceRow(true))
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	found, err := repo.FindUserByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != testUserID {
		t.Errorf("expected id %s, got %s", testUserID, found.ID)
	}

	if _, err := repo.FindUserByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ── ActivateUser ─────────────────────────────────────────────────────────────

func TestActivateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	code := "code(" + testUserID + ")"
	mock.ExpectQuery(`UPDATE users SET is_active = TRUE WHERE activation_code = \$1`).
		WithArgs(code).
		WillReturnRows(aliceRow(true))

	activated, err := repo.ActivateUser(context.Background(), code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !activated.IsActive {
		t.Error("expected account to be active")
	}
}

func TestActivateUser_UnknownCode(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.ActivateUser(context.Background(), "nope")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &userRepository{db: &DB{DB: db, logger: logger.Nop()}}

	mock.ExpectPing()
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("down"))
	if err := repo.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestDB_MigrateNil(t *testing.T) {
	var db *DB
	if err := db.Migrate(); !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}
}

func TestPostgresErrorHelpers(t *testing.T) {
	err := pgConstraintError(pgerrcode.UniqueViolation, "users_email_key")

	if got := postgresError(err); got != pgerrcode.UniqueViolation {
		t.Errorf("expected %s, got %s", pgerrcode.UniqueViolation, got)
	}
	if got := postgresConstraint(err); got != "users_email_key" {
		t.Errorf("expected users_email_key, got %s", got)
	}
	if postgresError(errors.New("plain")) != "" || postgresConstraint(errors.New("plain")) != "" {
		t.Error("non-postgres errors must yield empty code and constraint")
	}
}
