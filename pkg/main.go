package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/driftwood-social/interactive/pkg/internal"
	"github.com/driftwood-social/interactive/pkg/internal/cache"
	"github.com/driftwood-social/interactive/pkg/internal/database"
	"github.com/driftwood-social/interactive/pkg/internal/grpc"
	"github.com/driftwood-social/interactive/pkg/internal/http"
	"github.com/driftwood-social/interactive/pkg/internal/services"
	"github.com/driftwood-social/interactive/pkg/internal/storage"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____       _  __ _                          _\n|  _ \\ _ __(_)/ _| |___      _____   ___   __| |\n| | | | '__| | |_| __\\ \\ /\\ / / _ \\ / _ \\ / _` |\n| |_| | |  | |  _| |_ \\ V  V / (_) | (_) | (_| |\n|____/|_|  |_|_|  \\__| \\_/\\_/ \\___/ \\___/ \\__,_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Driftwood.Interactive"), pkg.AppVersion)
	fmt.Printf("The post service in Driftwood\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	_ = godotenv.Load()
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.AutomaticEnv()

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Local cache for hot lookups
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Connect to file storage
	if store, err := storage.NewS3Store(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connecting to file storage.")
	} else {
		services.Files = store
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.CleanupOrphanFiles)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	go grpc.NewGrpc().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
