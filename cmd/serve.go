package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hintforge/wordle-helper/internal/config"
	"github.com/hintforge/wordle-helper/internal/guess"
	"github.com/hintforge/wordle-helper/internal/httpserver"
	"github.com/hintforge/wordle-helper/internal/words"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the guess-generation HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default: config server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	dict, count, err := serverDictionary()
	if err != nil {
		return err
	}

	port := servePort
	if port == "" {
		port = config.GetString(config.KeyServerPort)
	}

	srv := httpserver.New(dict, count)
	log.Info().Str("port", port).Int("words", count).Msg("starting wordle-helper")
	return srv.Start(":" + port)
}

// serverDictionary loads the configured fallback dictionary: the word
// database wins over a word list file; with neither configured the embedded
// default list is used so filtered requests work out of the box.
func serverDictionary() (guess.Dictionary, int, error) {
	if path := config.GetString(config.KeyWordsDB); path != "" {
		db, err := words.OpenDB(path)
		if err != nil {
			return nil, 0, err
		}
		n, err := db.Count()
		if err != nil {
			return nil, 0, err
		}
		return db, n, nil
	}
	if path := config.GetString(config.KeyWordsFile); path != "" {
		set, err := words.LoadFile(path, 0)
		if err != nil {
			return nil, 0, err
		}
		return set, set.Count(), nil
	}
	set := words.Default(0)
	return set, set.Count(), nil
}
