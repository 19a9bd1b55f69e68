package repositories

import (
	"context"
	"errors"
	"fmt"

	"spenzly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 50

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListByUserID returns the newest audit entries for a user. A non-positive
// or oversized limit falls back to the default page size.
func (r *AuditLogRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultAuditLogLimit
	}

	var logs []models.AuditLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit logs for user: %w", err)
	}

	return logs, nil
}
