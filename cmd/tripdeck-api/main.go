// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tripdeck/internal/ai"
	"tripdeck/internal/config"
	httptransport "tripdeck/internal/http"
	"tripdeck/internal/infra"
	"tripdeck/internal/maps"
	"tripdeck/internal/modules/feedback"
	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/modules/tips"
	"tripdeck/internal/modules/video"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	warehouse, err := infra.NewWarehouse(ctx, cfg.Warehouse.ProjectID)
	if err != nil {
		log.Fatalf("bigquery init: %v", err)
	}
	defer warehouse.Close()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	providers := []ai.Provider{gemini}
	if cfg.AI.OpenAIKey != "" {
		openaiProvider, err := ai.NewOpenAIProvider(cfg.AI.OpenAIKey)
		if err != nil {
			log.Fatalf("openai init: %v", err)
		}
		providers = append(providers, openaiProvider)
	}
	llm := ai.NewCascade(providers...)

	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	tipsStore := tips.NewStore(warehouse, cfg.Warehouse.Dataset)
	tipsSvc := tips.NewService(tipsStore)

	videoStore := video.NewStore(redisClient, warehouse, cfg.Warehouse.Dataset)
	videoSvc, err := video.NewService(ctx, cfg.Video.APIKey, videoStore)
	if err != nil {
		log.Fatalf("youtube init: %v", err)
	}

	feedbackStore := feedback.NewStore(dbPool)
	feedbackSvc := feedback.NewService(feedbackStore)

	itineraryStore := itinerary.NewStore(redisClient)
	itinerarySvc := itinerary.NewService(llm, tipsSvc, videoSvc, placesSvc, itineraryStore)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Itinerary: itinerarySvc,
		Tips:      tipsSvc,
		Video:     videoSvc,
		Places:    placesSvc,
		Routes:    routeSvc,
		Feedback:  feedbackSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
