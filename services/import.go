package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/models"
)

// ErrBankAccountNotFound is returned when the referenced account is not
// linked to the requesting user.
var ErrBankAccountNotFound = errors.New("bank account not found")

// ExpenseLedger is the slice of expense storage the importer needs.
type ExpenseLedger interface {
	RecordExpense(ctx context.Context, e *models.Expense) error
	FindDuplicateByBankTransactionID(ctx context.Context, userID, bankTransactionID string) (*models.Expense, error)
}

// BankAccounts looks up a user's linked accounts.
type BankAccounts interface {
	GetBankAccountByNumber(ctx context.Context, userID, accountNumber string) (*models.BankAccount, error)
}

// ImportRequest carries either a linked bank-account number or a raw
// transaction list. When both are present the account wins.
type ImportRequest struct {
	BankAccountID string                   `json:"bankAccountId"`
	Transactions  []models.BankTransaction `json:"transactions"`
	Source        models.ExpenseSource     `json:"source"`
}

// ImportExpenses bulk-inserts transactions into the user's ledger,
// skipping any whose bank transaction id is already recorded for that
// user. Duplicates are counted as skips, never as failures; the return
// value is the number of newly recorded expenses. Re-running the same
// import is therefore safe and returns 0.
func ImportExpenses(ctx context.Context, ledger ExpenseLedger, accounts BankAccounts, userID string, req ImportRequest) (int, error) {
	transactions := req.Transactions
	if req.BankAccountID != "" {
		account, err := accounts.GetBankAccountByNumber(ctx, userID, req.BankAccountID)
		if err != nil {
			return 0, err
		}
		if account == nil {
			return 0, ErrBankAccountNotFound
		}
		transactions = account.Transactions
	}

	source := req.Source
	if source == "" {
		source = models.SourceBank
	}

	imported := 0
	for _, txn := range transactions {
		n, err := importTransaction(ctx, ledger, userID, txn, source)
		if err != nil {
			return imported, err
		}
		imported += n
	}

	logger.Get().Info("expenses imported",
		zap.String("user_id", userID),
		zap.Int("imported_count", imported),
		zap.Int("total", len(transactions)))
	return imported, nil
}

func importTransaction(ctx context.Context, ledger ExpenseLedger, userID string, txn models.BankTransaction, source models.ExpenseSource) (int, error) {
	existing, err := ledger.FindDuplicateByBankTransactionID(ctx, userID, txn.BankTransactionID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, nil
	}

	now := time.Now()
	expense := &models.Expense{
		UserID:            userID,
		Amount:            txn.Amount,
		Date:              txn.Date,
		Description:       txn.Description,
		Category:          txn.Category,
		Merchant:          txn.Merchant,
		Source:            source,
		BankTransactionID: txn.BankTransactionID,
		ImportedAt:        &now,
	}
	if err := ledger.RecordExpense(ctx, expense); err != nil {
		return 0, err
	}
	return 1, nil
}
