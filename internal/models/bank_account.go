package models

// BankAccount is the persisted ledger record. The password is stored as a
// digest; the CVV2 is generated at creation and never user-chosen.
type BankAccount struct {
	OwnerUID      string `json:"owner_uid"`
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
	CVV2          int    `json:"cvv2"`
	Balance       int    `json:"balance"`
}
