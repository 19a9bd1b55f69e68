package repositories

import (
	"context"
	"errors"
	"fmt"

	"spenzly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Post locks the owning account, inserts the transaction and moves the
// balance by the transaction's signed amount.
func (r *transactionRepository) Post(ctx context.Context, transaction *models.Transaction) (*models.Account, error) {
	if transaction == nil {
		return nil, errors.New("transaction cannot be nil")
	}

	var account models.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", transaction.AccountID, transaction.UserID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		newBalance := account.Balance.Add(transaction.SignedAmount())
		if err := tx.Model(&account).Update("balance", newBalance).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}
		account.Balance = newBalance

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// ListByUserID returns every transaction the user owns, most recent date
// first. Equal dates are ordered by id so repeated reads agree.
func (r *transactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
