package services

import (
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/internal/storage"
	"github.com/fazeleardestani/cinema-ticket/internal/utils"
)

const (
	// accountPasswordLength is the exact length of a transaction password.
	accountPasswordLength = 4

	// withdrawReserve is the balance cushion an account must retain after a
	// withdrawal. Leaving exactly this amount is not allowed.
	withdrawReserve = 10
)

// BankService is the ledger: it owns the loaded account collection and is the
// only way accounts are created or mutated.
type BankService struct {
	store    *storage.Store[models.BankAccount]
	accounts []models.BankAccount
}

// NewBankService loads the account collection from the given store.
func NewBankService(store *storage.Store[models.BankAccount]) *BankService {
	return &BankService{
		store:    store,
		accounts: store.Load(),
	}
}

// FindAccount returns the account with the given number.
func (s *BankService) FindAccount(accountNumber string) (*models.BankAccount, error) {
	for i := range s.accounts {
		if s.accounts[i].AccountNumber == accountNumber {
			return &s.accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// CreateAccount opens a zero-balance account for the owner. The transaction
// password must be exactly 4 characters; the account number and CVV2 are
// generated here so uniqueness is guaranteed.
func (s *BankService) CreateAccount(ownerUID, password string) (*models.BankAccount, error) {
	if len(password) != accountPasswordLength {
		zap.L().Warn("account password must be exactly 4 characters",
			zap.String("owner_uid", ownerUID))
		return nil, ErrInvalidAccountPassword
	}

	account := models.BankAccount{
		OwnerUID:      ownerUID,
		AccountNumber: s.uniqueAccountNumber(),
		Password:      utils.HashPassword(password),
		CVV2:          rand.Intn(9_900) + 100,
	}
	s.accounts = append(s.accounts, account)
	if err := s.store.Save(s.accounts); err != nil {
		return nil, err
	}
	return &s.accounts[len(s.accounts)-1], nil
}

// Deposit credits the account.
func (s *BankService) Deposit(accountNumber string, amount int) error {
	if amount <= 0 {
		zap.L().Warn("deposit amount must be positive",
			zap.String("account_number", accountNumber), zap.Int("amount", amount))
		return ErrInvalidAmount
	}

	account, err := s.FindAccount(accountNumber)
	if err != nil {
		return err
	}
	account.Balance += amount
	return s.store.Save(s.accounts)
}

// Withdraw debits the account after verifying credentials. The password is
// checked before the CVV2, so a wrong password always reports as a password
// failure. The withdrawal must leave the balance non-negative and strictly
// above the reserve.
func (s *BankService) Withdraw(accountNumber string, amount int, password string, cvv2 int) error {
	account, err := s.FindAccount(accountNumber)
	if err != nil {
		return err
	}
	if err := s.securityCheck(account, password, cvv2); err != nil {
		return err
	}

	remaining := account.Balance - amount
	if account.Balance < amount || remaining <= withdrawReserve {
		zap.L().Warn("account balance is insufficient",
			zap.String("account_number", accountNumber), zap.Int("amount", amount))
		return ErrInsufficientFunds
	}

	account.Balance = remaining
	return s.store.Save(s.accounts)
}

// Transfer moves funds between two accounts. Real banking rails are out of
// scope, so the operation is a named stub.
func (s *BankService) Transfer(fromNumber, toNumber string, amount int) error {
	return ErrTransferNotSupported
}

func (s *BankService) securityCheck(account *models.BankAccount, password string, cvv2 int) error {
	if account.Password != utils.HashPassword(password) {
		zap.L().Warn("account password is incorrect",
			zap.String("account_number", account.AccountNumber))
		return ErrInvalidAccountPassword
	}
	if account.CVV2 != cvv2 {
		zap.L().Warn("cvv2 is incorrect",
			zap.String("account_number", account.AccountNumber))
		return ErrInvalidCVV2
	}
	return nil
}

// uniqueAccountNumber draws random 8-digit numbers until one is free.
func (s *BankService) uniqueAccountNumber() string {
	existing := make(map[string]struct{}, len(s.accounts))
	for _, account := range s.accounts {
		existing[account.AccountNumber] = struct{}{}
	}
	for {
		number := strconv.Itoa(rand.Intn(90_000_000) + 10_000_000)
		if _, taken := existing[number]; !taken {
			return number
		}
	}
}
