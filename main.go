package main

import (
	"fmt"
	"os"

	"github.com/cbsinteractive/annotate/cmd"
	"github.com/cbsinteractive/annotate/config"
	"github.com/cbsinteractive/annotate/exceptions"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	reporter, err := exceptions.NewReporter(cfg.Sentry.DSN, cfg.Sentry.Env)
	if err != nil {
		logger.WithError(err).Warn("exception reporting disabled")
		reporter = &exceptions.NoopReporter{}
	}

	if err := cmd.NewRootCmd(cfg, logger).Execute(); err != nil {
		reporter.ReportException(err)
		logger.Error(err)
		os.Exit(1)
	}
}
