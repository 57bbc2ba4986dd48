package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/pkg/logger"
)

var (
	managerMovieTitle  string
	managerAgeGroup    int
	managerCapacity    int
	managerPrice       int
	managerShowingTime string
)

var createShowingCmd = &cobra.Command{
	Use:   "create-showing",
	Short: "Create a movie showing (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer logger.Sync()

		admin, err := adminLogin(a)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome %s\n", admin.Username)

		movie := models.Movie{Name: managerMovieTitle, AgeGroup: managerAgeGroup}
		showing, err := a.cinema.CreateShowing(movie, managerCapacity, managerPrice, managerShowingTime)
		if err != nil {
			return err
		}

		fmt.Printf("Showing created: %s (age %d+) at %s, capacity %d, price %d\n",
			showing.Name, showing.AgeGroup, showing.ShowingTime, showing.ShowingCapacity, showing.Price)
		return nil
	},
}

func init() {
	createShowingCmd.Flags().StringVar(&managerMovieTitle, "movie-title", "", "movie title")
	createShowingCmd.Flags().IntVar(&managerAgeGroup, "age-group", 0, "minimum age for the movie")
	createShowingCmd.Flags().IntVar(&managerCapacity, "capacity", 0, "total number of seats")
	createShowingCmd.Flags().IntVar(&managerPrice, "price", 0, "ticket price")
	createShowingCmd.Flags().StringVar(&managerShowingTime, "showing-time", "", "showing time (1404-6-16 22:00)")
	createShowingCmd.MarkFlagRequired("movie-title")
	createShowingCmd.MarkFlagRequired("age-group")
	createShowingCmd.MarkFlagRequired("capacity")
	createShowingCmd.MarkFlagRequired("price")
	createShowingCmd.MarkFlagRequired("showing-time")
	rootCmd.AddCommand(createShowingCmd)
}

// adminLogin authenticates the operator and verifies the admin role.
func adminLogin(a *app) (*models.User, error) {
	in := bufio.NewReader(os.Stdin)

	fmt.Println("--- Admin Login ---")
	fmt.Print("Admin Username: ")
	username, _ := in.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Admin Password: ")
	var password string
	if data, err := term.ReadPassword(int(os.Stdin.Fd())); err == nil {
		fmt.Println()
		password = string(data)
	} else {
		line, _ := in.ReadString('\n')
		password = strings.TrimSpace(line)
	}

	admin, err := a.users.Login(username, password)
	if err != nil {
		return nil, err
	}
	if err := a.users.RequireAdmin(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
