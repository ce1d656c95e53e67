// Package cli implements the tcxedit CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tcxtools/tcxedit/internal/config"
	"github.com/tcxtools/tcxedit/internal/editor"
	"github.com/tcxtools/tcxedit/internal/store"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "tcxedit",
	Short: "Inspect, trim, and convert TCX activity files",
	Long:  "A small CLI for TCX activity files: statistics, trackpoint views, track trimming, GPX conversion, and a SQLite-backed activity library.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Library database path (default: $TCXEDIT_DB or ~/.config/tcxedit/library.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or text")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("TCXEDIT_DB"); env != "" {
		return env
	}
	return config.Load().DBPath
}

func getFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	return config.Load().Format
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openSession reads a TCX file and parses it into an editing session,
// exiting on failure. All file I/O lives in this package; the core
// takes and returns text.
func openSession(path string) *editor.Session {
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr("read file", err)
	}
	s, err := editor.New(string(data))
	if err != nil {
		exitErr("parse tcx", err)
	}
	return s
}

func writeOutput(path, content string) {
	if path == "" {
		fmt.Println(content)
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		exitErr("write file", err)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
