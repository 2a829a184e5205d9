// Package cli implements the kinlog CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kinlog/kinlog/internal/store"
)

var (
	dbPath  string
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "kinlog",
	Short: "A relationship journal that learns your rhythms",
	Long: "Log daily energy and social interactions, get ranked reflection chips,\n" +
		"and surface behavioral patterns. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $KINLOG_DB or ~/.kinlog/journal.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("KINLOG_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kinlog", "journal.db")
}

func openStore() (*store.SQLiteStore, error) {
	path := getDBPath()
	logger.Debug("opening store", "db", path)
	return store.NewSQLiteStore(path)
}

func exitErr(msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
