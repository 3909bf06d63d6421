package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navyajewels/backoffice/internal/adapters/console"
	"github.com/navyajewels/backoffice/internal/adapters/repository"
	"github.com/navyajewels/backoffice/internal/application/services"
	"github.com/navyajewels/backoffice/internal/infrastructure/config"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
)

// Version is the console version, stamped at build time.
var Version = "1.0.0"

// RegisterGlobalFlags wires root-level flags into the configuration.
// A changed flag beats the environment; an unset one falls through to
// env vars and then the built-in defaults.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String("data-dir", "", "directory holding the JSON collection files")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format (console, json)")

	viper.BindPFlag("data.dir", root.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("logger.level", root.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logger.format", root.PersistentFlags().Lookup("log-format"))
}

// app bundles everything a command needs after bootstrap
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	render    *console.Renderer
	users     *services.UserService
	orders    *services.OrderService
	enquiries *services.EnquiryService
	summary   *services.SummaryService
	seed      *services.SeedService
	verify    *services.VerifyService
}

// newApp loads configuration and wires repositories and services
func newApp(out io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	log.Debugw("Configuration loaded",
		"environment", cfg.App.Environment,
		"data_dir", cfg.Data.Dir,
	)

	userRepo := repository.NewUserRepository(cfg.Data.UsersPath(), log)
	orderRepo := repository.NewOrderRepository(cfg.Data.OrdersPath(), log)
	enquiryRepo := repository.NewEnquiryRepository(cfg.Data.ContactsPath(), log)

	return &app{
		cfg:       cfg,
		log:       log,
		render:    console.NewRenderer(out),
		users:     services.NewUserService(userRepo, log),
		orders:    services.NewOrderService(orderRepo, log),
		enquiries: services.NewEnquiryService(enquiryRepo, log),
		summary:   services.NewSummaryService(userRepo, orderRepo, enquiryRepo, log),
		seed:      services.NewSeedService(cfg.Data.Dir, userRepo, orderRepo, enquiryRepo, log),
		verify:    services.NewVerifyService(userRepo, orderRepo, enquiryRepo, log),
	}, nil
}

func (a *app) close() {
	_ = a.log.Close()
}

// confirm asks before a destructive action. Anything but y or yes
// counts as no.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the console version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Navya Jewels backoffice v%s\n", Version)
		},
	}
}
