// Package cmd wires the services behind the two console entry points: the
// interactive menu and the admin manager. No business logic lives here.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fazeleardestani/cinema-ticket/config"
	"github.com/fazeleardestani/cinema-ticket/internal/models"
	"github.com/fazeleardestani/cinema-ticket/internal/services"
	"github.com/fazeleardestani/cinema-ticket/internal/storage"
	"github.com/fazeleardestani/cinema-ticket/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "cinematicket",
	Short:         "Cinema ticket booking over JSON-file storage",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

// app bundles the wired services for a command invocation.
type app struct {
	users  *services.UserService
	bank   *services.BankService
	cinema *services.CinemaService
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		return nil, err
	}

	bank := services.NewBankService(storage.NewStore[models.BankAccount](cfg.AccountsFile))
	cinema := services.NewCinemaService(storage.NewStore[models.Showing](cfg.ShowingsFile))
	users := services.NewUserService(storage.NewStore[models.User](cfg.UsersFile), bank, cinema)

	return &app{users: users, bank: bank, cinema: cinema}, nil
}
