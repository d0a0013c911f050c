package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hintforge/wordle-helper/internal/config"
	"github.com/hintforge/wordle-helper/internal/words"
)

var (
	dictDBPath     string
	dictWordLength int
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the SQLite word database",
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word list file into the word database",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictImport,
}

func init() {
	dictCmd.PersistentFlags().StringVar(&dictDBPath, "db", "", "Word database path (default: config words.db)")
	dictImportCmd.Flags().IntVar(&dictWordLength, "length", 5, "Keep only words of this length (0 = any)")
	dictCmd.AddCommand(dictImportCmd)
	rootCmd.AddCommand(dictCmd)
}

func runDictImport(cmd *cobra.Command, args []string) error {
	path := dictDBPath
	if path == "" {
		path = config.GetString(config.KeyWordsDB)
	}
	if path == "" {
		return errors.New("no word database configured: pass --db or set words.db")
	}

	db, err := words.OpenDB(path)
	if err != nil {
		return fmt.Errorf("open words db: %w", err)
	}
	defer db.Close()

	cmd.SilenceUsage = true
	n, err := db.Import(args[0], dictWordLength)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	total, err := db.Count()
	if err != nil {
		return err
	}
	log.Info().Str("db", path).Int("imported", n).Int("total", total).Msg("word list imported")
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d words (%d total)\n", n, total)
	return nil
}
