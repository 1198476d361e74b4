package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-catalog/internal/paths"
	"library-catalog/library"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataFile  string
)

// configDataFile holds the data_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataFile string

var rootCmd = &cobra.Command{
	Use:   "libcat",
	Short: "Libcat manages a small library catalog of books and journals",
	Long: `Libcat is a single-user inventory manager for a small library catalog.
Items are books and journals, persisted to a flat text file between runs.

Run without arguments in a terminal to enter the interactive menu, or use
the subcommands for one-shot operations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataFile = cfg.GetString(cfgKeyDataFile)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cmd.Help()
		}
		mgr, err := openManager()
		if err != nil {
			return err
		}
		runInteractive(mgr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.libcat)")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "catalog data file (default: $(CWD)/library_data.txt)")

	rootCmd.AddCommand(addBookCmd)
	rootCmd.AddCommand(addJournalCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(borrowCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// openManager resolves the data file location and loads the catalog.
// Load warnings (skipped corrupt lines) go to stderr.
func openManager() (*library.LibraryManager, error) {
	dataFile, err := paths.ResolveDataFile(flagDataFile, configDataFile)
	if err != nil {
		return nil, err
	}
	mgr, err := library.NewLibraryManager(dataFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, warn := range mgr.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: skipped record: %v\n", warn)
	}
	return mgr, nil
}

// saveCatalog persists the catalog. A save failure is reported as a
// warning and never terminates the process; the in-memory state of the
// session that produced it is already gone either way.
func saveCatalog(mgr *library.LibraryManager) {
	if err := mgr.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save catalog: %v\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
