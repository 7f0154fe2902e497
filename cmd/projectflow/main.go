// Command projectflow runs the terminal client. The serve subcommand
// starts the bundled development API server the client syncs against.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/projectflow/internal/api"
	"github.com/nhle/projectflow/internal/apiserver"
	"github.com/nhle/projectflow/internal/app"
	"github.com/nhle/projectflow/internal/credential"
	"github.com/nhle/projectflow/internal/fixtures"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	appsync "github.com/nhle/projectflow/internal/sync"
)

var (
	configPath string

	serveAddr  string
	serveDB    string
	serveToken string
)

var rootCmd = &cobra.Command{
	Use:   "projectflow",
	Short: "Terminal project management client",
	Long: `ProjectFlow is a terminal client for managing projects, tasks,
teams, and a shared calendar, backed by a REST API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled development API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored API token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store the API token in the system keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credential.Set(credential.TokenKey, args[0]); err != nil {
			return err
		}
		fmt.Println("Token stored.")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credential.Delete(credential.TokenKey); err != nil {
			return err
		}
		fmt.Println("Token removed.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "path to the configuration file")

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveDB, "db", defaultDBPath(), "path to the SQLite database (use :memory: for ephemeral)")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "require this bearer token on every request")

	tokenCmd.AddCommand(tokenSetCmd, tokenClearCmd)
	rootCmd.AddCommand(serveCmd, tokenCmd)
}

func runTUI() error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// A missing token is fine against an unauthenticated dev server.
	token, err := credential.Get(credential.TokenKey)
	if err != nil {
		token = ""
	}

	client := api.NewClient(cfg.Server.BaseURL, token)
	facade := api.NewFacade(client)

	st := state.New()
	fixtures.Seed(st)

	refresher := appsync.New(st, facade, time.Duration(cfg.Server.PollIntervalSec)*time.Second)

	p := tea.NewProgram(app.New(st, facade, refresher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func runServer() error {
	store, err := apiserver.OpenStore(serveDB)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := apiserver.NewServer(store, serveToken)
	fmt.Printf("ProjectFlow API server listening on %s (db: %s)\n", serveAddr, serveDB)
	return srv.Router().Run(serveAddr)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "projectflow.db"
	}
	return filepath.Join(home, ".config", "projectflow", "projectflow.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
