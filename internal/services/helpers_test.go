package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/internal/storage"
	"github.com/fazeleardestani/cinema-ticket/internal/utils"
)

// newTestServices wires the three services over stores in a fresh temp dir so
// every test runs against its own empty collections.
func newTestServices(t *testing.T) (*UserService, *BankService, *CinemaService) {
	t.Helper()
	dir := t.TempDir()

	bank := NewBankService(storage.NewStore[models.BankAccount](filepath.Join(dir, "bank.json")))
	cinema := NewCinemaService(storage.NewStore[models.Showing](filepath.Join(dir, "showings.json")))
	users := NewUserService(storage.NewStore[models.User](filepath.Join(dir, "user.json")), bank, cinema)
	return users, bank, cinema
}

// showingTimeIn renders a valid showing time the given duration from now.
func showingTimeIn(d time.Duration) string {
	pt := ptime.New(time.Now().Add(d))
	return fmt.Sprintf("%d-%d-%d %02d:%02d", pt.Year(), int(pt.Month()), pt.Day(), pt.Hour(), pt.Minute())
}

// birthDateToday renders a birth date whose month/day match today, which
// makes any booking today eligible for the birthday discount. Years are
// probed upward so a leap-day birthday still lands on a valid year.
func birthDateToday() string {
	now := ptime.Now()
	for year := 1370; ; year++ {
		s := fmt.Sprintf("%d-%d-%d", year, int(now.Month()), now.Day())
		if _, err := utils.ParseDate(s); err == nil {
			return s
		}
	}
}

// birthDateOffSeason renders a birth date whose month can match neither
// today's month nor tomorrow's, so no birthday discount applies.
func birthDateOffSeason() string {
	month := int(ptime.Now().Month()) + 3
	if month > 12 {
		month -= 12
	}
	return fmt.Sprintf("1370-%d-1", month)
}
