package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	SubscriptionBronze = "bronze"
	SubscriptionSilver = "silver"
	SubscriptionGold   = "gold"
)

// User is the persisted user record. Bank accounts are referenced by account
// number; the account records themselves live in the ledger's own file.
type User struct {
	Role            string   `json:"role"`
	UID             string   `json:"uid"`
	Username        string   `json:"username"`
	PhoneNumber     string   `json:"phone_number"`
	Password        string   `json:"password"`
	BirthDate       string   `json:"birth_date"`
	BankAccounts    []string `json:"bank_accounts"`
	WalletBalance   int      `json:"wallet_balance"`
	Subscription    string   `json:"subscription"`
	CashbackCount   int      `json:"cashback_count"`
	CashbackDate    string   `json:"cashback_date"`
	CashbackPercent int      `json:"cashback_percent"`
	Gift            string   `json:"gift"`
	CreatedAt       string   `json:"created_at"`
	IsHashed        bool     `json:"is_hashed"`
}

// OwnsAccount reports whether the given account number is linked to the user.
func (u *User) OwnsAccount(accountNumber string) bool {
	for _, number := range u.BankAccounts {
		if number == accountNumber {
			return true
		}
	}
	return false
}
