package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jn607/UK-power-market-dashboard/cmd/controllers"
	"github.com/jn607/UK-power-market-dashboard/internal/config"
	"github.com/jn607/UK-power-market-dashboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config.json"

func main() {
	_ = godotenv.Load(".env")

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg := config.Default()
	if _, err := os.Stat(cfgPath); err == nil {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	} else {
		log.Printf("config file %s not found, using defaults", cfgPath)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %s: %v", cfg.Timezone, err)
	}

	logService, err := services.NewLogService()
	if err != nil {
		log.Fatalf("create log service: %v", err)
	}

	client := &http.Client{Timeout: cfg.RequestTimeout}
	insightsService, err := services.NewInsightsService(client)
	if err != nil {
		log.Fatalf("create insights service: %v", err)
	}

	fallbackService, err := services.NewFallbackService()
	if err != nil {
		log.Fatalf("create fallback service: %v", err)
	}

	generationService, err := services.NewGenerationService(insightsService, fallbackService, logService, cfg.GenerationURL, cfg.GenerationFallback)
	if err != nil {
		log.Fatalf("create generation service: %v", err)
	}

	demandService, err := services.NewDemandService(insightsService, fallbackService, logService, cfg.DemandURL, cfg.DemandFallback)
	if err != nil {
		log.Fatalf("create demand service: %v", err)
	}

	transformService, err := services.NewTransformService(services.DefaultCategoryTable(), services.DefaultEmissionFactors(), location)
	if err != nil {
		log.Fatalf("create transform service: %v", err)
	}

	pipelineService, err := services.NewPipelineService(generationService, demandService, transformService, logService)
	if err != nil {
		log.Fatalf("create pipeline service: %v", err)
	}

	log.Printf("fetching data from Elexon...")
	snapshot, err := pipelineService.Run(context.Background())
	if err != nil {
		log.Fatalf("run pipeline: %v", err)
	}

	chartService, err := services.NewChartService()
	if err != nil {
		log.Fatalf("create chart service: %v", err)
	}

	dashboardController, err := controllers.NewDashboardController(chartService, snapshot)
	if err != nil {
		log.Fatalf("create dashboard controller: %v", err)
	}

	seriesController, err := controllers.NewSeriesController(snapshot)
	if err != nil {
		log.Fatalf("create series controller: %v", err)
	}

	logsController, err := controllers.NewLogsController(logService)
	if err != nil {
		log.Fatalf("create logs controller: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if err := controllers.RegisterHealthRoutes(router); err != nil {
		log.Fatalf("register health routes: %v", err)
	}
	if err := dashboardController.RegisterRoutes(router); err != nil {
		log.Fatalf("register dashboard routes: %v", err)
	}
	if err := seriesController.RegisterRoutes(router); err != nil {
		log.Fatalf("register series routes: %v", err)
	}
	if err := logsController.RegisterRoutes(router); err != nil {
		log.Fatalf("register logs routes: %v", err)
	}

	log.Printf("starting dashboard on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
