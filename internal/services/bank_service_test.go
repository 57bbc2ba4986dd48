package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountRejectsWrongPasswordLength(t *testing.T) {
	_, bank, _ := newTestServices(t)

	for _, password := range []string{"", "123", "12345"} {
		account, err := bank.CreateAccount("owner-uid", password)
		assert.ErrorIs(t, err, ErrInvalidAccountPassword)
		assert.Nil(t, account)
	}
	assert.Empty(t, bank.accounts)
}

func TestCreateAccount(t *testing.T) {
	_, bank, _ := newTestServices(t)

	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)

	assert.Equal(t, "owner-uid", account.OwnerUID)
	assert.Len(t, account.AccountNumber, 8)
	assert.GreaterOrEqual(t, account.CVV2, 100)
	assert.LessOrEqual(t, account.CVV2, 9999)
	assert.Equal(t, 0, account.Balance)
	assert.NotEqual(t, "1234", account.Password)

	// persisted: a fresh service over the same store sees the account
	reloaded := NewBankService(bank.store)
	found, err := reloaded.FindAccount(account.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, *account, *found)
}

func TestCreateAccountNumbersAreUnique(t *testing.T) {
	_, bank, _ := newTestServices(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		account, err := bank.CreateAccount("owner-uid", "1234")
		require.NoError(t, err)
		assert.False(t, seen[account.AccountNumber])
		seen[account.AccountNumber] = true
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	_, bank, _ := newTestServices(t)
	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)

	for _, amount := range []int{0, -5} {
		assert.ErrorIs(t, bank.Deposit(account.AccountNumber, amount), ErrInvalidAmount)
	}
	assert.Equal(t, 0, account.Balance)
}

func TestDeposit(t *testing.T) {
	_, bank, _ := newTestServices(t)
	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)

	require.NoError(t, bank.Deposit(account.AccountNumber, 70))
	require.NoError(t, bank.Deposit(account.AccountNumber, 30))
	assert.Equal(t, 100, account.Balance)
}

func TestDepositUnknownAccount(t *testing.T) {
	_, bank, _ := newTestServices(t)
	assert.ErrorIs(t, bank.Deposit("00000000", 10), ErrAccountNotFound)
}

func TestWithdrawChecksPasswordBeforeCVV2(t *testing.T) {
	_, bank, _ := newTestServices(t)
	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(account.AccountNumber, 100))

	// wrong password reports as a password failure even when the cvv2 is
	// also wrong
	err = bank.Withdraw(account.AccountNumber, 10, "9999", account.CVV2+1)
	assert.ErrorIs(t, err, ErrInvalidAccountPassword)

	err = bank.Withdraw(account.AccountNumber, 10, "1234", account.CVV2+1)
	assert.ErrorIs(t, err, ErrInvalidCVV2)

	assert.Equal(t, 100, account.Balance)
}

func TestWithdrawReserveRule(t *testing.T) {
	_, bank, _ := newTestServices(t)
	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(account.AccountNumber, 50))

	// 50-45=5 would leave the balance at or below the reserve of 10
	err = bank.Withdraw(account.AccountNumber, 45, "1234", account.CVV2)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, account.Balance)

	// leaving exactly the reserve is not allowed either
	err = bank.Withdraw(account.AccountNumber, 40, "1234", account.CVV2)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, account.Balance)

	require.NoError(t, bank.Withdraw(account.AccountNumber, 10, "1234", account.CVV2))
	assert.Equal(t, 40, account.Balance)
}

func TestWithdrawMoreThanBalance(t *testing.T) {
	_, bank, _ := newTestServices(t)
	account, err := bank.CreateAccount("owner-uid", "1234")
	require.NoError(t, err)
	require.NoError(t, bank.Deposit(account.AccountNumber, 50))

	err = bank.Withdraw(account.AccountNumber, 60, "1234", account.CVV2)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, account.Balance)
}

func TestTransferNotSupported(t *testing.T) {
	_, bank, _ := newTestServices(t)
	assert.ErrorIs(t, bank.Transfer("11111111", "22222222", 10), ErrTransferNotSupported)
}
