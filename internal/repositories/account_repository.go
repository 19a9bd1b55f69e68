package repositories

import (
	"context"
	"errors"
	"fmt"

	"spenzly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrDefaultAccountConflict = errors.New("user already has a default account")
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create runs count, clear-defaults and insert under the user's row lock so
// concurrent creates for the same user observe each other.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, account.UserID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Account{}).Where("user_id = ?", account.UserID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count accounts: %w", err)
		}

		account.IsDefault = existing == 0 || account.IsDefault

		if account.IsDefault {
			if err := clearDefaults(tx, account.UserID); err != nil {
				return err
			}
		}

		if err := tx.Create(account).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrDefaultAccountConflict
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		return nil
	})
}

func clearDefaults(tx *gorm.DB, userID uuid.UUID) error {
	err := tx.Model(&models.Account{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default accounts: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByIDForUser(ctx context.Context, accountID, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

type accountTransactionCount struct {
	AccountID uuid.UUID
	Total     int64
}

// ListByUserIDWithCounts returns the user's accounts newest first, ties
// broken by id, each annotated with its transaction count.
func (r *accountRepository) ListByUserIDWithCounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithTransactionCount, error) {
	db := r.db.WithContext(ctx)

	var accounts []models.Account
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := make([]models.AccountWithTransactionCount, 0, len(accounts))
	if len(accounts) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(accounts))
	for i := range accounts {
		ids[i] = accounts[i].ID
	}

	var counts []accountTransactionCount
	if err := db.Model(&models.Transaction{}).
		Select("account_id, COUNT(*) AS total").
		Where("account_id IN ?", ids).
		Group("account_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	byAccount := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byAccount[c.AccountID] = c.Total
	}

	for _, account := range accounts {
		result = append(result, models.AccountWithTransactionCount{
			Account:          account,
			TransactionCount: byAccount[account.ID],
		})
	}

	return result, nil
}

func (r *accountRepository) SetDefault(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, bool, error) {
	var account models.Account
	changed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}

		if err := tx.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}

		if account.IsDefault {
			return nil
		}

		if err := clearDefaults(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(&account).Update("is_default", true).Error; err != nil {
			return fmt.Errorf("failed to set default account: %w", err)
		}

		account.IsDefault = true
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &account, changed, nil
}

func (r *accountRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
