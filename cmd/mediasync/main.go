package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/mediasync/config"
	"github.com/prognoshealth/mediasync/mediasync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed loading config")
	}

	logger := cfg.NewLogger()
	handler := mediasync.New(mediasync.WithLogger(logger.WithField("stage", cfg.Stage)))

	logger.WithField("stage", cfg.Stage).Info("starting mediasync")
	lambda.Start(handler.Handle)
}
