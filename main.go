package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hintforge/wordle-helper/cmd"
	"github.com/hintforge/wordle-helper/internal/config"
)

func main() {
	_ = godotenv.Load()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(config.GetString(config.KeyLogLevel)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cmd.Execute()
}
