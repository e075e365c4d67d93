package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agenda-assistant/config"
	_ "agenda-assistant/docs" // Swagger docs
	agendaHTTP "agenda-assistant/internal/agenda/delivery/http"
	"agenda-assistant/internal/agenda/repository/file"
	agendaUC "agenda-assistant/internal/agenda/usecase"
	"agenda-assistant/internal/httpserver"
	nluHTTP "agenda-assistant/internal/interpreter/delivery/http"
	nluUC "agenda-assistant/internal/interpreter/usecase"
	"agenda-assistant/internal/middleware"
	"agenda-assistant/pkg/datemath"
	"agenda-assistant/pkg/gcalendar"
	"agenda-assistant/pkg/log"
)

// @title       Agenda Assistant API
// @description Personal task and meeting agenda with conflict detection and a rule-based command interpreter.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agenda Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task store
	taskRepo, err := file.New(cfg.Store.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store at %q: %v", cfg.Store.Path, err)
		return
	}

	// 5. Google Calendar client (optional)
	var calendarMirror agendaUC.CalendarMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarMirror = calendarClient
		}
	}

	// 6. UseCases
	taskUC := agendaUC.New(logger, taskRepo, nil, calendarMirror, cfg.GoogleCalendar.CalendarID, cfg.Timezone)
	interpUC := nluUC.New(logger, taskUC, dateMathParser, nil)

	// 7. Delivery handlers
	agendaHandler := agendaHTTP.New(logger, taskUC)
	nluHandler := nluHTTP.New(logger, interpUC)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		AgendaHandler: agendaHandler,
		NLUHandler:    nluHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
