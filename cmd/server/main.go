package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"equipecal/api"
	"equipecal/handlers"
	"equipecal/internal/database"
	"equipecal/services/builder"
	"equipecal/services/calendar"
	"equipecal/services/events"
	"equipecal/services/rules"
	"equipecal/services/store"
	"equipecal/utils"
)

func main() {
	listen := flag.String("listen", ":8585", "address to serve on")
	dataDir := flag.String("data-dir", "./data", "directory for the database and logs")
	rulesFile := flag.String("rules-file", "", "optional YAML rule set overriding the built-in defaults")
	defaultYear := flag.Int("year", time.Now().Year(), "year to open when no previous session exists")
	carryOver := flag.Bool("carry-over-events", false, "transplant the previous year's events onto freshly built years (legacy behavior)")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("create data directory: %v", err)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   filepath.Join(*dataDir, "logs", "server.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}))

	ruleSet, err := rules.Load(*rulesFile)
	if err != nil {
		log.Fatalf("load rule set: %v", err)
	}

	db, err := database.NewDB(database.Config{
		DatabasePath: filepath.Join(*dataDir, "equipecal.db"),
	})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	snapshots := database.NewSnapshotRepository(db.Connection())
	session := calendar.New(store.New(snapshots, builder.New(ruleSet)), events.New())
	session.SetCarryOverEvents(*carryOver)
	session.Resume(*defaultYear)

	calendarHandler := handlers.NewCalendarHandler(session)
	versionHandler := handlers.NewVersionHandler()

	// 30 writes per minute per client is generous for a team calendar.
	writeLimiter := api.NewIPRateLimiter(rate.Every(2*time.Second), 30)

	r := utils.NewRouter()
	r.HandleFunc("/api/version", versionHandler.GetVersion).Methods(http.MethodGet)
	r.HandleFunc("/api/calendar", calendarHandler.GetYear).Methods(http.MethodGet)
	r.HandleFunc("/api/calendar/year/{year}", calendarHandler.SwitchYear).Methods(http.MethodPost)
	r.HandleFunc("/api/calendar/months/{month}", calendarHandler.GetMonth).Methods(http.MethodGet)
	r.HandleFunc("/api/calendar/months/{month}/days/{day}", calendarHandler.GetDay).Methods(http.MethodGet)
	r.HandleFunc("/api/calendar/months/{month}/week", calendarHandler.GetWeek).Methods(http.MethodGet)
	r.HandleFunc("/api/calendar/months/{month}/events", writeLimiter.Limit(calendarHandler.CreateEvent)).Methods(http.MethodPost)
	r.HandleFunc("/api/calendar/months/{month}/events/{eventID}", writeLimiter.Limit(calendarHandler.UpdateEvent)).Methods(http.MethodPut)
	r.HandleFunc("/api/calendar/months/{month}/events/{eventID}", writeLimiter.Limit(calendarHandler.DeleteEvent)).Methods(http.MethodDelete)

	srv := &http.Server{
		Addr:         *listen,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("[server] listening on %s, year %d active", *listen, session.Year())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("[server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[server] shutdown: %v", err)
	}
}
