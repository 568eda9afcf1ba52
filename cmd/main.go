package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"advocacia-backend/internal/config"
	"advocacia-backend/internal/extract"
	"advocacia-backend/internal/gemini"
	"advocacia-backend/internal/handler"
	"advocacia-backend/internal/prompt"
	"advocacia-backend/internal/service"
	"advocacia-backend/internal/storage"
	"advocacia-backend/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "path to config file")
	flag.Parse()

	// .env is optional; the config file and real environment take over.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	client, err := gemini.NewGenAIClient(context.Background(), cfg.Gemini)
	if err != nil {
		logger.Fatalf("Failed to create Gemini client: %v", err)
	}

	store := newStore(cfg.Storage)
	if err := store.Init(); err != nil {
		logger.Fatalf("Failed to init storage: %v", err)
	}
	defer store.Close()

	extractor := extract.NewDocumentExtractor()
	composer := prompt.NewPetitionComposer(cfg.Firm)

	petitionHandler := handler.NewPetitionHandler(service.NewPetitionService(client, extractor, composer))
	postHandler := handler.NewPostHandler(service.NewPostService(client))
	queryHandler := handler.NewQueryHandler(service.NewQueryService(client))
	historyHandler := handler.NewHistoryHandler(store)

	router := setupRouter(cfg, petitionHandler, postHandler, queryHandler, historyHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("Server listening on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down...")
	if err := server.Close(); err != nil {
		logger.Errorf("Server close failed: %v", err)
	}
	logger.Info("Server stopped")
}

func newStore(cfg config.StorageConfig) storage.Store {
	switch cfg.Type {
	case "memory":
		return storage.NewMemoryStore()
	default:
		return storage.NewDiskStore(cfg.DataDir)
	}
}

func setupRouter(cfg *config.Config, petition *handler.PetitionHandler, post *handler.PostHandler,
	query *handler.QueryHandler, history *handler.HistoryHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/petition/generate", petition.Generate)
		api.POST("/petition/export", petition.Export)

		api.POST("/post/generate", post.Generate)
		api.POST("/post/export", post.Export)

		api.POST("/query/generate", query.Generate)

		h := api.Group("/history")
		{
			h.POST("/petitions", history.AddPetition)
			h.GET("/petitions", history.ListPetitions)
			h.PUT("/petitions/:id", history.UpdatePetition)
			h.DELETE("/petitions/:id", history.DeletePetition)

			h.POST("/posts", history.AddPost)
			h.GET("/posts", history.ListPosts)
			h.PUT("/posts/:id", history.UpdatePost)
			h.DELETE("/posts/:id", history.DeletePost)

			h.POST("/queries", history.AddQuery)
			h.GET("/queries", history.ListQueries)
			h.PUT("/queries/:id", history.UpdateQuery)
			h.DELETE("/queries/:id", history.DeleteQuery)
		}
	}

	return router
}
