package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer logger.Sync()

		menu := &menu{app: a, in: bufio.NewReader(os.Stdin)}
		menu.mainLoop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

type menu struct {
	app *app
	in  *bufio.Reader
}

func (m *menu) mainLoop() {
	for {
		fmt.Println("--- Menu ---")
		fmt.Println("  1.New User")
		fmt.Println("  2.Login")
		fmt.Println("  0.Exit")

		switch m.prompt("Enter your choice number: ") {
		case "1":
			m.register()
		case "2":
			if user, err := m.login(); err == nil {
				m.profileLoop(user)
			} else {
				fmt.Println(err)
			}
		case "0":
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

func (m *menu) register() {
	fmt.Println("--- Create User ---")
	username := m.prompt("Username: ")
	fmt.Println("(Your password must be at least 4 characters long.)")
	password := m.promptPassword("Password: ")
	phoneNumber := m.prompt("Phone number (optional - press Enter to skip): ")
	birthDate := m.prompt("Birth date (1378-2-14): ")

	if _, err := m.app.users.Register(username, password, birthDate, phoneNumber); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("User created successfully.")
}

func (m *menu) login() (*models.User, error) {
	fmt.Println("--- Login ---")
	username := m.prompt("Username: ")
	password := m.promptPassword("Password: ")
	return m.app.users.Login(username, password)
}

func (m *menu) profileLoop(user *models.User) {
	for {
		fmt.Println("--- Profile ---")
		fmt.Println("  1.Show Information")
		fmt.Println("  2.Edit Profile")
		fmt.Println("  3.Change Password")
		fmt.Println("  4.Bank Accounts")
		fmt.Println("  5.Charge Wallet")
		fmt.Println("  6.Subscription")
		fmt.Println("  7.Book Ticket")
		fmt.Println("  8.Logout")

		switch m.prompt("Enter your choice number: ") {
		case "1":
			m.showInformation(user)
		case "2":
			m.editProfile(user)
		case "3":
			m.changePassword(user)
		case "4":
			m.bankAccounts(user)
		case "5":
			m.chargeWallet(user)
		case "6":
			m.subscription(user)
		case "7":
			m.bookTicket(user)
		case "8":
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

func (m *menu) showInformation(user *models.User) {
	fmt.Printf("User ID: %s\n", user.UID)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Phone Number: %s\n", user.PhoneNumber)
	fmt.Printf("Birth Date: %s\n", user.BirthDate)
	fmt.Printf("Wallet Balance: %d\n", user.WalletBalance)
	fmt.Printf("Subscription: %s\n", user.Subscription)
	if user.Subscription == models.SubscriptionGold {
		fmt.Printf("Remaining subscription days: %d\n", m.app.users.RemainingSubscriptionDays(user))
	}
}

func (m *menu) editProfile(user *models.User) {
	fmt.Println("--- Update your Profile ---")
	fmt.Println("If you don't want to change a field, just press Enter.")

	if newUsername := m.prompt("New Username: "); newUsername != "" {
		if err := m.app.users.UpdateUsername(user, newUsername); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("Username updated successfully.")
		}
	}
	if newPhoneNumber := m.prompt("New Phone number: "); newPhoneNumber != "" {
		if err := m.app.users.UpdatePhoneNumber(user, newPhoneNumber); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("Phone number updated successfully.")
		}
	}
	if newBirthDate := m.prompt("New Birth date: "); newBirthDate != "" {
		if err := m.app.users.UpdateBirthDate(user, newBirthDate); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("Birth date updated successfully.")
		}
	}
}

func (m *menu) changePassword(user *models.User) {
	fmt.Println("--- Change Password ---")
	oldPassword := m.promptPassword("Old Password: ")
	newPassword := m.promptPassword("New Password: ")
	confirmPassword := m.promptPassword("Confirm New Password: ")

	if err := m.app.users.UpdatePassword(user, oldPassword, newPassword, confirmPassword); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Password updated successfully.")
}

func (m *menu) bankAccounts(user *models.User) {
	fmt.Println("--- Bank Accounts ---")
	for _, number := range user.BankAccounts {
		if account, err := m.app.bank.FindAccount(number); err == nil {
			fmt.Printf("Account Number: %s, Balance: %d\n", account.AccountNumber, account.Balance)
		}
	}
	fmt.Println("  1.New Account")
	fmt.Println("  2.Deposit")
	fmt.Println("  3.Withdraw")
	fmt.Println("  0.Back")

	switch m.prompt("Enter your choice number: ") {
	case "1":
		fmt.Println("(The account password must be exactly 4 characters.)")
		password := m.promptPassword("Account Password: ")
		account, err := m.app.users.CreateBankAccount(user, password)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Account Number: %s, CVV2: %d\n", account.AccountNumber, account.CVV2)
	case "2":
		number := m.prompt("Account Number: ")
		amount := m.promptInt("Amount: ")
		if err := m.app.users.DepositToBankAccount(user, number, amount); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Deposit successful.")
	case "3":
		number := m.prompt("Account Number: ")
		password := m.promptPassword("Account Password: ")
		cvv2 := m.promptInt("CVV2: ")
		amount := m.promptInt("Amount: ")
		if err := m.app.users.WithdrawFromBankAccount(user, number, password, cvv2, amount); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Withdrawal successful.")
	}
}

func (m *menu) chargeWallet(user *models.User) {
	fmt.Println("--- Charge Wallet ---")
	number := m.prompt("Account Number: ")
	password := m.promptPassword("Account Password: ")
	cvv2 := m.promptInt("CVV2: ")
	amount := m.promptInt("Amount: ")

	if err := m.app.users.ChargeWallet(user, amount, number, password, cvv2); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Wallet charged. New balance: %d\n", user.WalletBalance)
}

func (m *menu) subscription(user *models.User) {
	fmt.Println("--- Subscription ---")
	fmt.Printf("Current subscription: %s\n", user.Subscription)
	fmt.Println("  1.Silver (20)")
	fmt.Println("  2.Gold (30)")

	choice := m.prompt("Enter the number of your subscription: ")
	if err := m.app.users.ChangeSubscription(user, choice); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Subscription changed to %s.\n", user.Subscription)
}

func (m *menu) bookTicket(user *models.User) {
	fmt.Println("--- Book Ticket ---")
	active := m.app.cinema.ActiveShowings()
	if len(active) == 0 {
		fmt.Println("No active showings.")
		return
	}
	for i, showing := range active {
		fmt.Printf("  %d. %s (age %d+) at %s, price %d, seats left %d\n",
			i+1, showing.Name, showing.AgeGroup, showing.ShowingTime, showing.Price, showing.SeatsLeft())
	}

	index := m.promptInt("Enter the number of the showing: ")
	if index < 1 || index > len(active) {
		fmt.Println("Invalid choice, please try again.")
		return
	}

	if err := m.app.users.BookTicket(user, active[index-1].ID); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Ticket booked. New wallet balance: %d\n", user.WalletBalance)
}

func (m *menu) prompt(label string) string {
	fmt.Print(label)
	line, _ := m.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (m *menu) promptInt(label string) int {
	value, _ := strconv.Atoi(m.prompt(label))
	return value
}

func (m *menu) promptPassword(label string) string {
	fmt.Print(label)
	if data, err := term.ReadPassword(int(os.Stdin.Fd())); err == nil {
		fmt.Println()
		return string(data)
	}
	// stdin is not a terminal, fall back to a visible read
	line, _ := m.in.ReadString('\n')
	return strings.TrimSpace(line)
}
