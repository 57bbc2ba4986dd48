package services

import (
	"time"

	"github.com/google/uuid"
	ptime "github.com/yaa110/go-persian-calendar"
	"go.uber.org/zap"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/internal/storage"
	"github.com/fazeleardestani/cinema-ticket/internal/utils"
)

const (
	minPasswordLength = 4

	silverCashbackCount   = 3
	silverCashbackPercent = 20
	goldCashbackPercent   = 50
	goldCashbackDays      = 30
	goldGift              = "a free Soda"

	// birthdayDiscount is added, in percentage points, when the user's birth
	// month/day matches the showing date or the booking date.
	birthdayDiscount = 50
)

var subscriptionCost = map[string]int{
	models.SubscriptionBronze: 0,
	models.SubscriptionSilver: 20,
	models.SubscriptionGold:   30,
}

// UserService owns the user collection and orchestrates the ledger and the
// showing catalog for wallet funding and ticket booking.
type UserService struct {
	store  *storage.Store[models.User]
	users  []models.User
	bank   *BankService
	cinema *CinemaService
}

// NewUserService loads the user collection from the given store.
func NewUserService(store *storage.Store[models.User], bank *BankService, cinema *CinemaService) *UserService {
	return &UserService{
		store:  store,
		users:  store.Load(),
		bank:   bank,
		cinema: cinema,
	}
}

// Register creates a new user. The username must be unique across the whole
// collection, the password at least 4 characters, and the birth date a valid
// Persian date.
func (s *UserService) Register(username, password, birthDate, phoneNumber string) (*models.User, error) {
	if s.usernameTaken(username) {
		zap.L().Warn("username already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	if len(password) < minPasswordLength {
		zap.L().Warn("password must be at least 4 characters", zap.String("username", username))
		return nil, ErrWeakPassword
	}
	if _, err := utils.ParseDate(birthDate); err != nil {
		zap.L().Warn("birth date does not match the expected format",
			zap.String("birth_date", birthDate), zap.Error(err))
		return nil, ErrInvalidDate
	}

	now := utils.FormatTimestamp(ptime.Now())
	user := models.User{
		Role:         models.RoleUser,
		UID:          uuid.New().String(),
		Username:     username,
		PhoneNumber:  phoneNumber,
		Password:     utils.HashPassword(password),
		BirthDate:    birthDate,
		BankAccounts: []string{},
		Subscription: models.SubscriptionBronze,
		CashbackDate: now,
		CreatedAt:    now,
		IsHashed:     true,
	}
	s.users = append(s.users, user)
	if err := s.store.Save(s.users); err != nil {
		return nil, err
	}

	registered := user
	return &registered, nil
}

// Login returns the user matching both username and password digest. The
// error never distinguishes an unknown user from a wrong password.
func (s *UserService) Login(username, password string) (*models.User, error) {
	hashed := utils.HashPassword(password)
	for i := range s.users {
		if s.users[i].Username == username && s.users[i].Password == hashed {
			found := s.users[i]
			return &found, nil
		}
	}
	zap.L().Warn("login failed", zap.String("username", username))
	return nil, ErrInvalidCredentials
}

// UpdateUsername renames the user after re-checking uniqueness.
func (s *UserService) UpdateUsername(user *models.User, newUsername string) error {
	if s.usernameTaken(newUsername) {
		zap.L().Warn("username already exists", zap.String("username", newUsername))
		return ErrUsernameTaken
	}
	user.Username = newUsername
	return s.updateUser(user)
}

// UpdatePhoneNumber replaces the phone number. No format validation on
// purpose.
func (s *UserService) UpdatePhoneNumber(user *models.User, newPhoneNumber string) error {
	user.PhoneNumber = newPhoneNumber
	return s.updateUser(user)
}

// UpdateBirthDate replaces the birth date after validating the format.
func (s *UserService) UpdateBirthDate(user *models.User, newBirthDate string) error {
	if _, err := utils.ParseDate(newBirthDate); err != nil {
		zap.L().Warn("birth date does not match the expected format",
			zap.String("birth_date", newBirthDate), zap.Error(err))
		return ErrInvalidDate
	}
	user.BirthDate = newBirthDate
	return s.updateUser(user)
}

// UpdatePassword replaces the password after verifying the old one and the
// confirmation.
func (s *UserService) UpdatePassword(user *models.User, oldPassword, newPassword, confirmPassword string) error {
	if user.Password != utils.HashPassword(oldPassword) {
		zap.L().Warn("old password does not match", zap.String("username", user.Username))
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLength {
		zap.L().Warn("password must be at least 4 characters", zap.String("username", user.Username))
		return ErrWeakPassword
	}
	if newPassword != confirmPassword {
		zap.L().Warn("new password and confirmation do not match", zap.String("username", user.Username))
		return ErrConfirmationMismatch
	}

	user.Password = utils.HashPassword(newPassword)
	if err := s.updateUser(user); err != nil {
		return err
	}
	zap.L().Info("password updated", zap.String("username", user.Username))
	return nil
}

// CreateBankAccount opens a ledger account for the user and links its number
// to the user record.
func (s *UserService) CreateBankAccount(user *models.User, password string) (*models.BankAccount, error) {
	account, err := s.bank.CreateAccount(user.UID, password)
	if err != nil {
		return nil, err
	}
	user.BankAccounts = append(user.BankAccounts, account.AccountNumber)
	if err := s.updateUser(user); err != nil {
		return nil, err
	}
	return account, nil
}

// ChargeWallet funds the wallet by withdrawing from one of the user's bank
// accounts. Ledger failures propagate unchanged and leave the wallet as is.
func (s *UserService) ChargeWallet(user *models.User, amount int, accountNumber, accountPassword string, cvv2 int) error {
	if err := s.bank.Withdraw(accountNumber, amount, accountPassword, cvv2); err != nil {
		return err
	}
	user.WalletBalance += amount
	return s.updateUser(user)
}

// DepositToBankAccount deposits into one of the user's own accounts.
func (s *UserService) DepositToBankAccount(user *models.User, accountNumber string, amount int) error {
	if !user.OwnsAccount(accountNumber) {
		return ErrAccountNotFound
	}
	return s.bank.Deposit(accountNumber, amount)
}

// WithdrawFromBankAccount withdraws from one of the user's own accounts.
func (s *UserService) WithdrawFromBankAccount(user *models.User, accountNumber, accountPassword string, cvv2, amount int) error {
	if !user.OwnsAccount(accountNumber) {
		return ErrAccountNotFound
	}
	return s.bank.Withdraw(accountNumber, amount, accountPassword, cvv2)
}

// ChangeSubscription buys a paid tier: "1" for silver, "2" for gold. The
// cost is debited from the wallet; a balance below the cost leaves tier and
// balance untouched.
func (s *UserService) ChangeSubscription(user *models.User, choice string) error {
	var tier string
	switch choice {
	case "1":
		tier = models.SubscriptionSilver
	case "2":
		tier = models.SubscriptionGold
	default:
		zap.L().Warn("invalid subscription choice", zap.String("choice", choice))
		return ErrInvalidChoice
	}

	cost := subscriptionCost[tier]
	if user.WalletBalance < cost {
		zap.L().Warn("insufficient funds for subscription",
			zap.String("username", user.Username), zap.String("subscription", tier))
		return ErrInsufficientFunds
	}

	user.WalletBalance -= cost
	user.Subscription = tier
	switch tier {
	case models.SubscriptionSilver:
		user.CashbackCount = silverCashbackCount
		user.CashbackPercent = silverCashbackPercent
	case models.SubscriptionGold:
		user.CashbackDate = utils.FormatTimestamp(ptime.New(time.Now().AddDate(0, 0, goldCashbackDays)))
		user.CashbackPercent = goldCashbackPercent
		user.Gift = goldGift
	}
	return s.updateUser(user)
}

// BookTicket reserves a seat and debits the wallet by the discounted price.
// The seat is reserved before the wallet is touched, so a full showing never
// costs the user money. The showing and the user are persisted independently;
// there is no cross-entity transaction.
func (s *UserService) BookTicket(user *models.User, showingID string) error {
	showing, err := s.cinema.FindShowing(showingID)
	if err != nil {
		return err
	}

	finalPrice, err := s.ticketPrice(user, showing)
	if err != nil {
		return err
	}
	if finalPrice > user.WalletBalance {
		zap.L().Warn("insufficient funds for ticket",
			zap.String("username", user.Username), zap.String("movie", showing.Name),
			zap.Int("price", finalPrice))
		return ErrInsufficientFunds
	}

	if err := s.cinema.ReserveSeat(showingID, user.UID); err != nil {
		return err
	}

	user.WalletBalance -= finalPrice
	s.applyCashback(user, finalPrice)
	return s.updateUser(user)
}

// Age returns the user's age in whole years.
func (s *UserService) Age(user *models.User) int {
	birthDate, err := utils.ParseDate(user.BirthDate)
	if err != nil {
		return 0
	}
	days := int(utils.TimeSpan(birthDate, ptime.Now()).Hours() / 24)
	return days / 365
}

// MembershipMonths returns whole months since the account was created.
func (s *UserService) MembershipMonths(user *models.User) int {
	createdAt, err := utils.ParseTimestamp(user.CreatedAt)
	if err != nil {
		return 0
	}
	days := int(utils.TimeSpan(createdAt, ptime.Now()).Hours() / 24)
	return days / 30
}

// RemainingSubscriptionDays returns how many days of gold cashback are left,
// and 0 for any other tier or a lapsed window.
func (s *UserService) RemainingSubscriptionDays(user *models.User) int {
	if user.Subscription != models.SubscriptionGold {
		return 0
	}
	expiry, err := utils.ParseTimestamp(user.CashbackDate)
	if err != nil {
		return 0
	}
	days := int(utils.TimeSpan(ptime.Now(), expiry).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RequireAdmin gates admin-only actions such as showing creation.
func (s *UserService) RequireAdmin(user *models.User) error {
	if user.Role != models.RoleAdmin {
		zap.L().Warn("access denied: user is not an admin", zap.String("username", user.Username))
		return ErrAccessDenied
	}
	return nil
}

// ticketPrice applies the membership and birthday discounts to the showing
// price.
func (s *UserService) ticketPrice(user *models.User, showing *models.Showing) (int, error) {
	birthDate, err := utils.ParseDate(user.BirthDate)
	if err != nil {
		zap.L().Warn("birth date does not match the expected format",
			zap.String("birth_date", user.BirthDate), zap.Error(err))
		return 0, ErrInvalidDate
	}
	showingTime, err := utils.ParseDateTime(showing.ShowingTime)
	if err != nil {
		zap.L().Warn("showing time does not match the expected format",
			zap.String("showing_time", showing.ShowingTime), zap.Error(err))
		return 0, ErrInvalidDate
	}

	now := ptime.Now()
	birthday := (birthDate.Month() == showingTime.Month() && birthDate.Day() == showingTime.Day()) ||
		(birthDate.Month() == now.Month() && birthDate.Day() == now.Day())

	discount := s.MembershipMonths(user)
	if birthday {
		discount += birthdayDiscount
	}
	return utils.ApplyDiscount(showing.Price, discount), nil
}

// applyCashback credits a share of the ticket price back to the wallet for
// paid tiers. Silver burns one of its counted purchases and falls back to
// bronze at zero; gold credits for as long as its window has not lapsed.
func (s *UserService) applyCashback(user *models.User, finalPrice int) {
	switch user.Subscription {
	case models.SubscriptionSilver:
		if user.CashbackCount <= 0 {
			return
		}
		user.WalletBalance += finalPrice * user.CashbackPercent / 100
		user.CashbackCount--
		zap.L().Info("cashback credited",
			zap.String("username", user.Username), zap.Int("percent", user.CashbackPercent))
		if user.CashbackCount == 0 {
			user.Subscription = models.SubscriptionBronze
		}
	case models.SubscriptionGold:
		expiry, err := utils.ParseTimestamp(user.CashbackDate)
		if err != nil || !expiry.Time().After(time.Now()) {
			return
		}
		user.WalletBalance += finalPrice * user.CashbackPercent / 100
		zap.L().Info("cashback credited",
			zap.String("username", user.Username), zap.Int("percent", user.CashbackPercent),
			zap.String("gift", user.Gift))
	}
}

func (s *UserService) usernameTaken(username string) bool {
	for i := range s.users {
		if s.users[i].Username == username {
			return true
		}
	}
	return false
}

// updateUser writes the mutated user back into the collection and persists
// the whole collection.
func (s *UserService) updateUser(user *models.User) error {
	for i := range s.users {
		if s.users[i].UID == user.UID {
			s.users[i] = *user
			break
		}
	}
	return s.store.Save(s.users)
}
