package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/evelark/postboard/internal/config"
	"github.com/evelark/postboard/internal/database"
	"github.com/evelark/postboard/internal/handler"
	"github.com/evelark/postboard/internal/queue"
	"github.com/evelark/postboard/internal/repository"
	"github.com/evelark/postboard/internal/router"
	queue_publisher "github.com/evelark/postboard/internal/service"
	"github.com/evelark/postboard/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb, err := config.NewRedisClient()
	if err != nil {
		// Sessions live in Redis; without it nobody can log in.
		log.Fatalf("redis: %v", err)
	}

	sessions := session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	users := repository.NewUserRepo(db)
	posts := repository.NewPostRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, sessions)
	postHandler := handler.NewPostHandler(posts)
	postHandler.Publish = queue_publisher.PublishPostCreated

	// Background consumer mirroring the post feed into logs/posts.log.
	go func() {
		if err := queue.StartPostFeedConsumer(); err != nil {
			log.Printf("post-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Only allow-listed origins may make credentialed requests; everything
	// else is rejected here before any handler runs.
	origins := []string{"http://localhost:5173"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowCredentials: true,
	}))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, authHandler, postHandler, sessions, db)
	router.RegisterPages(e, cfg, sessions)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
