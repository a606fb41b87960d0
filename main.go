package main

import (
	"log"

	api "pinflow-backend/cmd/api"
	authdomain "pinflow-backend/internal/auth/domain"
	authRepo "pinflow-backend/internal/auth/repository"
	authUsecase "pinflow-backend/internal/auth/usecase"
	pindomain "pinflow-backend/internal/pinterest/domain"
	pinRepo "pinflow-backend/internal/pinterest/repository"
	pinScheduler "pinflow-backend/internal/pinterest/scheduler"
	pinUsecase "pinflow-backend/internal/pinterest/usecase"
	postdomain "pinflow-backend/internal/post/domain"
	postRepo "pinflow-backend/internal/post/repository"
	postUsecase "pinflow-backend/internal/post/usecase"
	"pinflow-backend/pkg/config"
	"pinflow-backend/pkg/database"
	"pinflow-backend/pkg/pinterest"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &postdomain.Post{}, &pindomain.APICallLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	postRepository := postRepo.NewGormPostRepository(db)
	apiLogRepository := pinRepo.NewGormAPICallLogRepository(db)

	// Initialize Pinterest API client with the audit log as call recorder
	pinterestClient := pinterest.NewClient(cfg, apiLogRepository)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository)
	connectUsecaseInstance := pinUsecase.NewConnectUsecase(userRepository, pinterestClient)

	boardResolver := pinUsecase.NewBoardResolver(userRepository, pinterestClient)
	publisher := pinUsecase.NewPublisher(postRepository, userRepository, apiLogRepository, pinterestClient, boardResolver, cfg)

	// Start the in-process publish ticker when enabled; the HTTP trigger
	// stays available either way
	if cfg.PublisherEnabled {
		schedulerInstance := pinScheduler.NewPublishScheduler(publisher, cfg.PublisherInterval)
		schedulerInstance.Start()
	} else {
		log.Println("[Publisher] In-process scheduler disabled, publish via HTTP trigger only")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, postUsecaseInstance, publisher, connectUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
