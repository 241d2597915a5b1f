package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aysaac/easyapply/internal/api"
	"github.com/aysaac/easyapply/internal/bot"
	"github.com/aysaac/easyapply/internal/config"
	"github.com/aysaac/easyapply/internal/ledger"
	"github.com/aysaac/easyapply/internal/llm"
	"github.com/aysaac/easyapply/internal/pdf"
	"github.com/aysaac/easyapply/internal/render"
	"github.com/aysaac/easyapply/internal/resume"
	"github.com/aysaac/easyapply/pkg/logger"
)

func main() {
	logger.Setup()
	cfg := config.Load()

	slog.Info("starting easyapply...")

	client, err := llm.New(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		slog.Error("completion service setup failed", "error", err)
		os.Exit(1)
	}

	synth := llm.NewSynthesizer(client, llm.SlogRecorder{})
	renderer := render.New(render.Personalization{
		DisplayName:    cfg.DisplayName,
		SourceTitle:    cfg.SourceTitle,
		AlternateTitle: cfg.AlternateTitle,
		ContactLine:    cfg.ContactLine,
	})
	materializer := pdf.NewMaterializer(
		&pdf.WkhtmltopdfEngine{BinPath: cfg.WkhtmltopdfPath},
		&pdf.ChromeEngine{ExecPath: cfg.ChromePath},
		cfg.DisableFallback,
	)

	manager, err := resume.NewManager(cfg.ExperienceFile, cfg.PersonalFile, cfg.OutputDir, synth, renderer, materializer)
	if err != nil {
		slog.Error("resume manager setup failed", "error", err)
		os.Exit(1)
	}

	lgr := ledger.New(cfg.LedgerFile)

	if cfg.DiscordToken != "" {
		b, err := bot.New(cfg.DiscordToken, manager, lgr)
		if err != nil {
			slog.Error("bot setup failed", "error", err)
			os.Exit(1)
		}
		if err := b.Start(); err != nil {
			slog.Error("bot start failed", "error", err)
			os.Exit(1)
		}
		defer b.Close()
	}

	server := api.NewServer(cfg.Port, manager, lgr)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("API server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
}
