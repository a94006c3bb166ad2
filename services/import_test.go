package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijtanwar/wealthwise/models"
)

type fakeStore struct {
	expenses []*models.Expense
	accounts []*models.BankAccount
}

func (f *fakeStore) RecordExpense(_ context.Context, e *models.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeStore) FindDuplicateByBankTransactionID(_ context.Context, userID, txnID string) (*models.Expense, error) {
	for _, e := range f.expenses {
		if e.UserID == userID && e.BankTransactionID == txnID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetBankAccountByNumber(_ context.Context, userID, accountNumber string) (*models.BankAccount, error) {
	for _, a := range f.accounts {
		if a.UserID == userID && a.AccountNumber == accountNumber {
			return a, nil
		}
	}
	return nil, nil
}

func txn(id string, amount float64) models.BankTransaction {
	return models.BankTransaction{
		BankTransactionID: id,
		Amount:            amount,
		Date:              time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:          "groceries",
	}
}

func TestImportExpenses_FromRawTransactions(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	req := ImportRequest{Transactions: []models.BankTransaction{txn("t1", 100), txn("t2", 200)}}

	count, err := ImportExpenses(context.Background(), store, store, "user-a", req)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, store.expenses, 2)
	assert.Equal(t, models.SourceBank, store.expenses[0].Source)
	assert.NotNil(t, store.expenses[0].ImportedAt)
}

func TestImportExpenses_Idempotent(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	req := ImportRequest{Transactions: []models.BankTransaction{txn("t1", 100)}}

	count, err := ImportExpenses(context.Background(), store, store, "user-a", req)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = ImportExpenses(context.Background(), store, store, "user-a", req)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Len(t, store.expenses, 1)
}

func TestImportExpenses_DuplicatesScopedPerUser(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	req := ImportRequest{Transactions: []models.BankTransaction{txn("t1", 100)}}

	count, err := ImportExpenses(context.Background(), store, store, "user-a", req)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// same external id for a different user is not a duplicate
	count, err = ImportExpenses(context.Background(), store, store, "user-b", req)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, store.expenses, 2)
}

func TestImportExpenses_PartialSkips(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	first := ImportRequest{Transactions: []models.BankTransaction{txn("t1", 100)}}
	_, err := ImportExpenses(context.Background(), store, store, "user-a", first)
	require.NoError(t, err)

	second := ImportRequest{Transactions: []models.BankTransaction{txn("t1", 100), txn("t2", 200), txn("t3", 300)}}
	count, err := ImportExpenses(context.Background(), store, store, "user-a", second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, store.expenses, 3)
}

func TestImportExpenses_FromBankAccount(t *testing.T) {
	t.Parallel()

	store := &fakeStore{accounts: []*models.BankAccount{{
		UserID:        "user-a",
		AccountNumber: "ACC-1",
		Transactions:  []models.BankTransaction{txn("t1", 50), txn("t2", 75)},
	}}}

	count, err := ImportExpenses(context.Background(), store, store, "user-a", ImportRequest{BankAccountID: "ACC-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportExpenses_BankAccountNotFound(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	_, err := ImportExpenses(context.Background(), store, store, "user-a", ImportRequest{BankAccountID: "missing"})
	assert.ErrorIs(t, err, ErrBankAccountNotFound)
}

func TestImportExpenses_BankAccountOwnership(t *testing.T) {
	t.Parallel()

	store := &fakeStore{accounts: []*models.BankAccount{{
		UserID:        "user-a",
		AccountNumber: "ACC-1",
		Transactions:  []models.BankTransaction{txn("t1", 50)},
	}}}

	// another user cannot import from an account they don't own
	_, err := ImportExpenses(context.Background(), store, store, "user-b", ImportRequest{BankAccountID: "ACC-1"})
	assert.ErrorIs(t, err, ErrBankAccountNotFound)
}

func TestImportExpenses_ExplicitSource(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	req := ImportRequest{
		Transactions: []models.BankTransaction{txn("t1", 100)},
		Source:       models.SourceFile,
	}

	_, err := ImportExpenses(context.Background(), store, store, "user-a", req)
	require.NoError(t, err)
	assert.Equal(t, models.SourceFile, store.expenses[0].Source)
}
