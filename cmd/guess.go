package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hintforge/wordle-helper/internal/config"
	"github.com/hintforge/wordle-helper/internal/guess"
	"github.com/hintforge/wordle-helper/internal/words"
)

var (
	guessPresent     string
	guessDictionary  string
	guessWordsFile   string
	guessWordsDB     string
	guessDefaultDict bool
	guessLimit       int
)

var guessCmd = &cobra.Command{
	Use:   "guess <pattern> [available]",
	Short: "Print candidate guesses for a pattern",
	Long: "Pattern is your previous guess with '?' marking unknown positions.\n" +
		"Available is every letter still worth trying; a letter that may occur\n" +
		"twice must be listed twice. Letters known to be in the word somewhere\n" +
		"go in --present instead.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().StringVarP(&guessPresent, "present", "p", "", "Letters known present but unplaced")
	guessCmd.Flags().StringVarP(&guessDictionary, "dictionary", "d", "", "Inline word list (whitespace-separated) to filter guesses")
	guessCmd.Flags().StringVar(&guessWordsFile, "words-file", "", "Word list file to filter guesses (default: config words.file)")
	guessCmd.Flags().StringVar(&guessWordsDB, "words-db", "", "SQLite word database to filter guesses (default: config words.db)")
	guessCmd.Flags().BoolVar(&guessDefaultDict, "default-dictionary", false, "Filter against the embedded default word list")
	guessCmd.Flags().IntVarP(&guessLimit, "limit", "n", 0, "Stop after this many guesses (0 = unlimited)")
	rootCmd.AddCommand(guessCmd)
}

func runGuess(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	available := ""
	if len(args) > 1 {
		available = args[1]
	}

	dict, closer, err := resolveDictionary(len(pattern))
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	seq, err := guess.Generate(pattern, available, guessPresent, dict)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()
	n := 0
	for g := range seq {
		fmt.Fprintln(out, g)
		n++
		if guessLimit > 0 && n == guessLimit {
			break
		}
	}
	return nil
}

// resolveDictionary picks the filter source by precedence: inline list,
// explicit db/file flags, embedded default, then configured db/file. The
// returned closer is non-nil for database-backed dictionaries.
func resolveDictionary(length int) (guess.Dictionary, func(), error) {
	switch {
	case guessDictionary != "":
		return words.ParseSet(guessDictionary, length), nil, nil
	case guessWordsDB != "":
		return openWordsDB(guessWordsDB)
	case guessWordsFile != "":
		set, err := words.LoadFile(guessWordsFile, length)
		return set, nil, err
	case guessDefaultDict:
		return words.Default(length), nil, nil
	}

	if path := config.GetString(config.KeyWordsDB); path != "" {
		return openWordsDB(path)
	}
	if path := config.GetString(config.KeyWordsFile); path != "" {
		set, err := words.LoadFile(path, length)
		return set, nil, err
	}
	return nil, nil, nil
}

func openWordsDB(path string) (guess.Dictionary, func(), error) {
	db, err := words.OpenDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open words db: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}
