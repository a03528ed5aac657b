package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rightorrude/config"
	"rightorrude/controllers"
	"rightorrude/routes"
	"rightorrude/services"
	"rightorrude/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The gateway is built once here and read-only for all sessions. A
	// missing key is not fatal: the server runs and rejects submissions
	// with a configuration fault until a key is provided.
	var gateway services.ModelGateway
	if cfg.Gemini.ApiKey != "" {
		gw, err := services.NewGateway(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize the AI model: %v", err)
		}
		defer gw.Close()
		gateway = gw
	} else {
		log.Println("Gemini API key not found; submissions will be rejected until one is configured")
	}

	newDeliberator := func() *services.Deliberator {
		return services.NewDeliberator(
			gateway,
			cfg.Personas,
			cfg.Deliberation.Mode,
			services.JudgeRetry(cfg.Deliberation.JudgeMaxAttempts),
		)
	}

	router := setupRouter(newDeliberator, gateway != nil)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(newDeliberator func() *services.Deliberator, configured bool) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	jc := controllers.NewJudgmentController(newDeliberator(), configured)
	routes.SetupJudgmentRoutes(router, jc)

	router.GET("/ws/judge", websocket.DeliberationHandler(newDeliberator))

	return router
}
