package repositories

import (
	"context"
	"testing"
	"time"

	"spenzly/internal/database"
	"spenzly/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	ctx     context.Context
	user    *models.User
	account *models.Account
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db)
	s.account = database.CreateTestAccount(s.T(), s.db, s.user.ID, "Everyday", true)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) newTransaction(txType, amount string, date time.Time) *models.Transaction {
	return &models.Transaction{
		Type:      txType,
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
		Category:  "groceries",
		UserID:    s.user.ID,
		AccountID: s.account.ID,
	}
}

func (s *TransactionRepositorySuite) TestPost_AdjustsBalance() {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	account, err := s.repo.Post(s.ctx, s.newTransaction(models.TransactionTypeExpense, "30.25", date))
	s.Require().NoError(err)
	s.Equal("69.75", account.BalanceString())

	account, err = s.repo.Post(s.ctx, s.newTransaction(models.TransactionTypeIncome, "0.25", date))
	s.Require().NoError(err)
	s.Equal("70.00", account.BalanceString())

	var stored models.Account
	s.Require().NoError(s.db.First(&stored, "id = ?", s.account.ID).Error)
	s.Equal("70.00", stored.BalanceString())
}

func (s *TransactionRepositorySuite) TestPost_ForeignAccount() {
	other := database.CreateTestUser(s.T(), s.db)
	tx := s.newTransaction(models.TransactionTypeIncome, "5.00", time.Now())
	tx.UserID = other.ID

	_, err := s.repo.Post(s.ctx, tx)

	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *TransactionRepositorySuite) TestPost_InvalidTransactionLeavesBalance() {
	tx := s.newTransaction(models.TransactionTypeExpense, "5.00", time.Now())
	tx.Category = ""

	_, err := s.repo.Post(s.ctx, tx)

	s.ErrorIs(err, models.ErrCategoryRequired)
	var stored models.Account
	s.Require().NoError(s.db.First(&stored, "id = ?", s.account.ID).Error)
	s.Equal("100.00", stored.BalanceString())
}

func (s *TransactionRepositorySuite) TestListByUserID_OrderedByDateDescending() {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	oldest := s.newTransaction(models.TransactionTypeIncome, "1.00", base)
	newest := s.newTransaction(models.TransactionTypeExpense, "2.00", base.AddDate(0, 0, 2))
	middle := s.newTransaction(models.TransactionTypeExpense, "3.00", base.AddDate(0, 0, 1))
	for _, tx := range []*models.Transaction{oldest, newest, middle} {
		s.Require().NoError(s.db.Create(tx).Error)
	}

	other := database.CreateTestUser(s.T(), s.db)
	otherAccount := database.CreateTestAccount(s.T(), s.db, other.ID, "Theirs", true)
	database.CreateTestTransaction(s.T(), s.db, otherAccount, models.TransactionTypeIncome, "9.00")

	transactions, err := s.repo.ListByUserID(s.ctx, s.user.ID)

	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal([]uuid.UUID{newest.ID, middle.ID, oldest.ID},
		[]uuid.UUID{transactions[0].ID, transactions[1].ID, transactions[2].ID})
}

func (s *TransactionRepositorySuite) TestListByUserID_EqualDatesAreConsistent() {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.db.Create(s.newTransaction(models.TransactionTypeExpense, "1.00", date)).Error)
	}

	first, err := s.repo.ListByUserID(s.ctx, s.user.ID)
	s.Require().NoError(err)
	second, err := s.repo.ListByUserID(s.ctx, s.user.ID)
	s.Require().NoError(err)

	s.Require().Len(first, 4)
	for i := range first {
		s.Equal(first[i].ID, second[i].ID)
	}
}

func (s *TransactionRepositorySuite) TestListByUserID_Empty() {
	transactions, err := s.repo.ListByUserID(s.ctx, uuid.New())

	s.Require().NoError(err)
	s.NotNil(transactions)
	s.Empty(transactions)
}
