package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The persisted field names are a compatibility contract; renaming a key
// would orphan every existing data file.

func keysOf(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestUserFieldNames(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"role", "uid", "username", "phone_number", "password", "birth_date",
		"bank_accounts", "wallet_balance", "subscription", "cashback_count",
		"cashback_date", "cashback_percent", "gift", "created_at", "is_hashed",
	}, keysOf(t, User{}))
}

func TestBankAccountFieldNames(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"owner_uid", "account_number", "password", "cvv2", "balance",
	}, keysOf(t, BankAccount{}))
}

func TestShowingFieldNames(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"id", "name", "age_group", "showing_capacity", "price", "showing_time", "reserved_seat",
	}, keysOf(t, Showing{}))
}

func TestUserRoundTrip(t *testing.T) {
	user := User{
		Role:            RoleUser,
		UID:             "uid-1",
		Username:        "carol",
		PhoneNumber:     "0912000000",
		Password:        "digest",
		BirthDate:       "1378-2-14",
		BankAccounts:    []string{"12345678"},
		WalletBalance:   42,
		Subscription:    SubscriptionSilver,
		CashbackCount:   2,
		CashbackDate:    "1404-06-16T22:00:00.000000",
		CashbackPercent: 20,
		Gift:            "a free Soda",
		CreatedAt:       "1404-01-01T09:30:00.000000",
		IsHashed:        true,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, user, decoded)
}
