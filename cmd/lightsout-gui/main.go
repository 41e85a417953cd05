package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sheikhrachel/go-lightsout/game"
	"github.com/sheikhrachel/go-lightsout/gui"
	"github.com/sheikhrachel/go-lightsout/utils"
)

var log = logrus.New()

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML config file (default $CONFIG_PATH or config.json)")
	flag.Parse()

	config, path, err := utils.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("failed to load configuration")
	}

	logger, closer, err := utils.NewLogger(config, os.Stderr)
	if err != nil {
		log.WithError(err).Fatal("failed to set up logging")
	}
	defer closer.Close()
	log = logger

	session, err := game.NewSession(config, nil, log)
	if err != nil {
		log.WithError(err).Fatal("failed to start game")
	}

	log.WithFields(logrus.Fields{"rows": config.Rows, "cols": config.Cols}).Info("opening window")
	if err := gui.New(session, log).Run(); err != nil {
		log.WithError(err).Error("window closed with an error")
	}
}
