package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, defaultMigrationsPath, runner.migrationsPath)
	assert.Equal(t, defaultSeedsPath, runner.seedsPath)

	custom := NewMigrationRunner(db, WithMigrationsPath("m"), WithSeedsPath("s"))
	assert.Equal(t, "m", custom.migrationsPath)
	assert.Equal(t, "s", custom.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	err = NewMigrationRunner(db).WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 3)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	err = NewMigrationRunner(db).WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 2)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db).WaitForDatabase(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestWaitForDatabase_ContextCancelled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	fastRetries(t, 5)
	retryInterval = time.Hour
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = NewMigrationRunner(db).WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, WithMigrationsPath("/nonexistent/path/to/migrations"))

	assert.NoError(t, runner.RunMigrations())
}

func TestRollback_RejectsNonPositiveSteps(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewMigrationRunner(db).Rollback(0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, WithMigrationsPath("/nonexistent/migrations"))

	_, _, err = runner.GetMigrationStatus()

	assert.ErrorIs(t, err, ErrMigrationsDirNotFound)
}

func TestLoadSeeds_DisabledByEnvironment(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "false")

	assert.NoError(t, NewMigrationRunner(db).LoadSeeds(context.Background()))
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")
	runner := NewMigrationRunner(db, WithSeedsPath("/nonexistent/seeds/path"))

	assert.NoError(t, runner.LoadSeeds(context.Background()))
}

func TestLoadSeeds_ExecutesFilesInOrderAndSkipsFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "002_accounts.sql"),
		[]byte("INSERT INTO accounts (id, name) VALUES ('a', 'Everyday');"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "001_users.sql"),
		[]byte("INSERT INTO users (id, clerk_user_id) VALUES ('u', 'user_1');"), 0o644))

	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("duplicate key"))
	mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := NewMigrationRunner(db, WithSeedsPath(tempDir))
	err = runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "001_invalid.sql"), 0o755))

	t.Setenv("SEED_DATABASE", "true")

	err = NewMigrationRunner(db, WithSeedsPath(tempDir)).LoadSeeds(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(context.Background(), db))
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "true")
	fastRetries(t, 2)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = RunMigrationsIfEnabled(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}
