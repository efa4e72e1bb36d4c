package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"pdf-upload-form/form"
	"pdf-upload-form/models"
	"pdf-upload-form/picker"
	"pdf-upload-form/preview"
	"pdf-upload-form/tui"
	"pdf-upload-form/ui"
	"pdf-upload-form/upload"
	"pdf-upload-form/utils"
)

func main() {
	var (
		configFile = flag.String("c", "", "Path to YAML configuration file")
		endpoint   = flag.String("e", "", "Upload endpoint URL")
		email      = flag.String("m", "", "Email address to prefill")
		startDir   = flag.String("d", "", "Directory the file picker opens in")
		plain      = flag.Bool("plain", false, "Use line prompts instead of the full-screen interface")
		logFile    = flag.String("log", "", "Write logs to this file")
		verbose    = flag.Bool("v", false, "Debug logging")
		help       = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "PDF Upload - send PDF files and an email address to an upload endpoint\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file or glob ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Files given as arguments are selected before the form opens.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg, err := models.LoadConfig(*configFile, ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and environment
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}
	if *email != "" {
		cfg.Email = *email
	}
	if *startDir != "" {
		cfg.StartDir = *startDir
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if *plain {
		cfg.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := utils.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(*cfg, picker.Expand(flag.Args()), log); err != nil {
		log.WithError(err).Error("exiting")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg models.Config, initialPaths []string, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"plain":    cfg.Plain,
		"files":    len(initialPaths),
	}).Info("starting")

	store := preview.NewStore(preview.Render, log)
	ctrl := form.NewController(store, log)
	client := upload.NewClient(cfg.Endpoint, cfg.Timeout, log)

	defer func() {
		if n := store.ReleaseAll(); n > 0 {
			log.WithField("handles", n).Warn("released previews left behind")
		}
		stats := store.GetStats()
		log.WithFields(logrus.Fields{
			"created":  stats.Created,
			"released": stats.Released,
			"live":     stats.Live,
		}).Info("previews at exit")
	}()

	if cfg.Plain {
		session := ui.NewSession(ctrl, client, ui.NewSurveyDriver(), os.Stdout, client.Endpoint(), log)
		return session.Run(context.Background(), initialPaths)
	}

	return tui.Run(tui.NewModel(cfg, ctrl, client, log), initialPaths)
}
