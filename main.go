package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/utils"
)

var log = logrus.New()

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON or YAML config file (default $CONFIG_PATH or config.json)")
		plain      = flag.Bool("plain", false, "play line by line on stdin/stdout instead of full screen")
		survey     = flag.Int("survey", -1, "solve this many random boards and print statistics, then exit (0 uses survey_boards)")
		asJSON     = flag.Bool("json", false, "print survey results as JSON")
	)
	flag.Parse()

	config, path, err := utils.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("failed to load configuration")
	}

	// The full-screen UI owns the terminal, so its logs go to log_file or nowhere
	fallback := io.Writer(os.Stderr)
	if *survey < 0 && !*plain {
		fallback = io.Discard
	}
	logger, closer, err := utils.NewLogger(config, fallback)
	if err != nil {
		log.WithError(err).Fatal("failed to set up logging")
	}
	defer closer.Close()
	log = logger

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, *plain, *survey, *asJSON); err != nil {
		log.WithError(err).Error("lightsout stopped with an error")
		fmt.Fprintln(os.Stderr, err)
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, config utils.Config, plain bool, survey int, asJSON bool) error {
	if survey >= 0 {
		if survey == 0 {
			survey = config.SurveyBoards
		}
		log.WithField("boards", survey).Info("starting survey")
		return runSurvey(ctx, config, survey, asJSON, os.Stdout)
	}

	session, err := game.NewSession(config, nil, log)
	if err != nil {
		return err
	}
	if plain {
		return runPlain(ctx, session, os.Stdin, os.Stdout)
	}
	return runTUI(session, log)
}
