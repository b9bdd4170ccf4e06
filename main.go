package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"

	"venuereport/config"
	"venuereport/database"
	"venuereport/handlers"
	"venuereport/mailer"
	"venuereport/query"
	"venuereport/report"
)

var log = logging.MustGetLogger("log")

// InitLogger configures go-logging with the given level name.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{color}%{level:.5s}%{color:reset} %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func newMailer(cfg *config.Config) report.Mailer {
	if cfg.SMTPHost == "" {
		log.Warning("SMTP_HOST is not set, reports will be written to the log")
		return mailer.NewLogMailer(cfg.PreviewURL)
	}
	return mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		Timeout:    cfg.SMTPTimeout,
		PreviewURL: cfg.PreviewURL,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	// The dataset is loaded once; serving without it is not an option.
	data, err := database.Load(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load data file: %s", err)
	}

	dispatcher := report.NewDispatcher(newMailer(cfg), cfg.MailFrom)
	h := handlers.New(
		query.NewService(data),
		report.NewService(data, dispatcher, cfg.FilterByVenue),
		data.Len(),
	)
	app := newServer(cfg, h)

	go func() {
		log.Infof("starting backend server on %s", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server stopped: %s", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infof("Received signal %s, shutting down server...", sig)

	if err := app.Shutdown(); err != nil {
		log.Errorf("Shutdown failed: %s", err)
	}
}
