package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ticketapp/ticketapp/pkg/auth"
	"github.com/ticketapp/ticketapp/pkg/events"
	"github.com/ticketapp/ticketapp/pkg/log"
	"github.com/ticketapp/ticketapp/pkg/storage"
	"github.com/ticketapp/ticketapp/pkg/tickets"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ticketapp",
	Short: "Ticketapp - local-first ticket tracker",
	Long: `Ticketapp is a single-binary ticket tracker: accounts, a
persisted session, and CRUD over tickets with status and priority,
all stored in an embedded database on disk. No server required.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonOut, _ := cmd.Flags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(level),
			JSONOutput: jsonOut,
		})
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Ticketapp version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("data-dir", defaultDataDir(), "Directory holding the ticketapp database")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs instead of console output")

	// Add subcommands
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(statsCmd)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ticketapp"
	}
	return filepath.Join(home, ".ticketapp")
}

// app bundles the wired-up managers for a single command invocation.
type app struct {
	store   storage.Store
	broker  *events.Broker
	auth    *auth.Manager
	tickets *tickets.Manager
}

// openApp opens the store and wires the managers. Seeds the demo
// accounts and restores the persisted session before returning, so
// every command sees a settled auth state.
func openApp(cmd *cobra.Command) (*app, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewBoltStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	broker := events.NewBroker()
	broker.Start()
	go logEvents(broker.Subscribe())

	a := &app{
		store:   store,
		broker:  broker,
		auth:    auth.NewManager(store, broker),
		tickets: tickets.NewManager(store, broker),
	}

	if err := a.auth.SeedDemoUsers(); err != nil {
		a.Close()
		return nil, err
	}
	a.auth.Restore()

	return a, nil
}

// Close releases the store and stops the event broker.
func (a *app) Close() {
	a.broker.Stop()
	if err := a.store.Close(); err != nil {
		log.Errorf("failed to close store", err)
	}
}

// requireAuth returns an error unless a session is active.
func (a *app) requireAuth() error {
	if !a.auth.IsAuthenticated() {
		return fmt.Errorf("not logged in (run 'ticketapp login' first)")
	}
	return nil
}

// logEvents mirrors broker events into the debug log.
func logEvents(sub events.Subscriber) {
	logger := log.WithComponent("events")
	for event := range sub {
		logger.Debug().
			Str("type", string(event.Type)).
			Str("message", event.Message).
			Msg("event")
	}
}
