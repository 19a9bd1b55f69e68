package database

import (
	"fmt"
	"testing"

	"spenzly/internal/config"
	"spenzly/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The pool is pinned to one connection so every goroutine sees the same
// database and concurrent transactions serialize.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

func CreateTestUser(t *testing.T, db *DB) *models.User {
	t.Helper()

	user := &models.User{
		ClerkUserID: "user_" + gofakeit.LetterN(24),
		Email:       gofakeit.Email(),
		Name:        gofakeit.Name(),
		ImageURL:    gofakeit.URL(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, name string, isDefault bool) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:    userID,
		Name:      name,
		Type:      models.AccountTypeCurrent,
		Balance:   decimal.NewFromInt(100),
		IsDefault: isDefault,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestTransaction(t *testing.T, db *DB, account *models.Account, txType string, amount string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(4),
		Date:        gofakeit.PastDate().UTC(),
		Category:    gofakeit.RandomString([]string{"groceries", "salary", "rent", "travel"}),
		UserID:      account.UserID,
		AccountID:   account.ID,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"audit_logs",
		"transactions",
		"accounts",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
