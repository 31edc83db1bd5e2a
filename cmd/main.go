package main

import (
	"net/http"

	"DriftChat/config"
	"DriftChat/internal/auth"
	"DriftChat/internal/chat"
	"DriftChat/internal/matchmaker"
	"DriftChat/internal/middleware"
	"DriftChat/internal/moderation"
	"DriftChat/internal/safety"
	"DriftChat/internal/storage"
	"DriftChat/internal/utils"
	"DriftChat/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. Redis (ban/report records); memory fallback if down
	//-------------------------------------------------------
	var safetyRepo safety.Repo
	if err := storage.InitRedis(
		config.C.Redis.Addr,
		config.C.Redis.Password,
		config.C.Redis.DB,
	); err != nil {
		utils.Error.Printf("Redis init failed, ban list is in-memory only: %v", err)
		safetyRepo = safety.NewMemoryRepo()
	} else {
		safetyRepo = safety.NewRedisRepo(storage.Rdb)
	}
	guard := safety.NewService(safetyRepo, config.C.Chat.ReportThreshold)

	//-------------------------------------------------------
	// 2. Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. Hub (must start before anything sends)
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()

	//-------------------------------------------------------
	// 4. Matchmaker service + lifecycle manager
	//-------------------------------------------------------
	svc := matchmaker.NewService(hub, moderation.NewFilter(), guard)
	chat.NewManager(hub, svc)

	//-------------------------------------------------------
	// 5. Guest identity + websocket entry
	//-------------------------------------------------------
	authGroup := r.Group("/auth")
	{
		ah := auth.NewHandler()
		authGroup.POST("/guest", ah.Guest)
	}

	secret := []byte(config.C.JWT.Secret)
	authed := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		authed.GET("/ws", websocket.ServeWS(hub, guard, config.C.Chat.MaxPayloadBytes))
	}

	//-------------------------------------------------------
	// 6. Run
	//-------------------------------------------------------
	utils.Print.Info("DriftChat running", "port", config.C.Server.Port)
	if err := r.Run(config.C.Server.Port); err != nil {
		utils.Error.Fatalf("server exited: %v", err)
	}
}
