package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-glassfloor-ws/internal/auth"
	"go-glassfloor-ws/internal/handler"
	"go-glassfloor-ws/internal/middleware"
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/internal/service"
	"go-glassfloor-ws/internal/ws"
	"go-glassfloor-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{}, &model.Permission{},
		&model.ProductionOrder{}, &model.ProductionItem{},
		&model.WorkOrder{}, &model.Event{},
		&model.InventoryGroup{}, &model.InventoryItem{}, &model.InventoryHistory{},
		&model.Document{}, &model.MaintenanceRecord{}, &model.TrainingRecord{},
		&model.BroadcastMessage{},
	)

	// 3. Seed default permissions and the master user
	seedPermissionsAndMaster(db)

	// 4. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection
	userRepo := repository.NewUserRepo(db)
	permRepo := repository.NewPermissionRepo(db)
	prodRepo := repository.NewProductionOrderRepo(db)
	workRepo := repository.NewWorkOrderRepo(db)
	eventRepo := repository.NewEventRepo(db)
	invRepo := repository.NewInventoryRepo(db)
	docRepo := repository.NewDocumentRepo(db)
	maintRepo := repository.NewMaintenanceRepo(db)
	trainRepo := repository.NewTrainingRepo(db)
	msgRepo := repository.NewMessageRepo(db)

	permCache := auth.NewPermissionCache(userRepo)

	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, permRepo, permCache)
	prodService := service.NewProductionService(prodRepo, wsHub)
	workService := service.NewWorkOrderService(workRepo)
	schedService := service.NewScheduleService(eventRepo, workRepo)
	invService := service.NewInventoryService(invRepo, db, wsHub)
	recService := service.NewRecordsService(maintRepo, trainRepo)
	castService := service.NewBroadcastService(msgRepo, wsHub)
	dashService := service.NewDashboardService(invRepo, prodRepo, workRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	prodHandler := handler.NewProductionHandler(prodService)
	workHandler := handler.NewWorkOrderHandler(workService)
	schedHandler := handler.NewScheduleHandler(schedService)
	invHandler := handler.NewInventoryHandler(invService)
	docHandler := handler.NewDocumentHandler(docRepo)
	recHandler := handler.NewRecordsHandler(recService)
	castHandler := handler.NewBroadcastHandler(castService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Glassfloor v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	authRoutes := api.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/reset-password", authHandler.ResetPassword)
	authRoutes.Post("/validate-token", authHandler.ValidateToken)
	authRoutes.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	requires := func(key string) fiber.Handler {
		return middleware.RequirePermission(permCache, key)
	}

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// Production orders
	protected.Get("/production", requires("production.view"), prodHandler.GetOrders)
	protected.Get("/production/pipeline", requires("production.view"), prodHandler.GetPipeline)
	protected.Get("/production/:id", requires("production.view"), prodHandler.GetOrder)
	protected.Post("/production", requires("production.create"), prodHandler.CreateOrder)
	protected.Put("/production/:id", requires("production.update"), prodHandler.UpdateOrder)
	protected.Put("/production/:id/status", requires("production.update_status"), prodHandler.UpdateStatus)
	protected.Delete("/production/:id", requires("production.delete"), prodHandler.DeleteOrder)

	// Work orders
	protected.Get("/workorders", requires("workorder.view"), workHandler.GetOrders)
	protected.Get("/workorders/:id", requires("workorder.view"), workHandler.GetOrder)
	protected.Post("/workorders", requires("workorder.create"), workHandler.CreateOrder)
	protected.Put("/workorders/:id", requires("workorder.update"), workHandler.UpdateOrder)
	protected.Put("/workorders/:id/status", requires("workorder.update"), workHandler.UpdateStatus)
	protected.Delete("/workorders/:id", requires("workorder.delete"), workHandler.DeleteOrder)

	// Events and the combined calendar
	protected.Get("/events", requires("event.view"), schedHandler.GetEvents)
	protected.Post("/events", requires("event.create"), schedHandler.CreateEvent)
	protected.Put("/events/:id", requires("event.update"), schedHandler.UpdateEvent)
	protected.Delete("/events/:id", requires("event.delete"), schedHandler.DeleteEvent)
	protected.Get("/calendar", middleware.RequireAnyPermission(permCache, "event.view", "workorder.view"), schedHandler.GetCalendar)

	// Inventory
	protected.Get("/inventory", requires("inventory.view"), invHandler.GetItems)
	protected.Get("/inventory/report", requires("inventory.report"), invHandler.BuildReport)
	protected.Get("/inventory/:id", requires("inventory.view"), invHandler.GetItem)
	protected.Post("/inventory", requires("inventory.create"), invHandler.CreateItem)
	protected.Put("/inventory/:id", requires("inventory.update"), invHandler.UpdateItem)
	protected.Delete("/inventory/:id", requires("inventory.delete"), invHandler.DeleteItem)
	protected.Post("/inventory/:id/adjust", requires("inventory.adjust"), invHandler.AdjustStock)
	protected.Post("/inventory/:id/count", requires("inventory.adjust"), invHandler.SetStockCount)
	protected.Get("/inventory/:id/history", requires("inventory.view"), invHandler.GetItemHistory)
	protected.Get("/inventory-groups", requires("inventory.view"), invHandler.GetGroups)
	protected.Post("/inventory-groups", requires("inventory.create"), invHandler.CreateGroup)

	// Documents
	protected.Get("/documents", requires("document.view"), docHandler.GetDocuments)
	protected.Post("/documents", requires("document.create"), docHandler.CreateDocument)
	protected.Delete("/documents/:id", requires("document.delete"), docHandler.DeleteDocument)

	// Maintenance / training records
	protected.Get("/maintenance", requires("maintenance.view"), recHandler.GetMaintenance)
	protected.Post("/maintenance", requires("maintenance.manage"), recHandler.CreateMaintenance)
	protected.Put("/maintenance/:id/status", requires("maintenance.manage"), recHandler.UpdateMaintenanceStatus)
	protected.Delete("/maintenance/:id", requires("maintenance.manage"), recHandler.DeleteMaintenance)
	protected.Get("/training", requires("training.view"), recHandler.GetTraining)
	protected.Post("/training", requires("training.manage"), recHandler.CreateTraining)
	protected.Put("/training/:id/status", requires("training.manage"), recHandler.UpdateTrainingStatus)
	protected.Delete("/training/:id", requires("training.manage"), recHandler.DeleteTraining)

	// Broadcast messages
	protected.Get("/messages", requires("message.view"), castHandler.GetMessages)
	protected.Get("/messages/:id", requires("message.view"), castHandler.GetMessage)
	protected.Post("/messages", requires("message.broadcast"), castHandler.SendMessage)
	protected.Delete("/messages/:id", requires("message.broadcast"), castHandler.DeleteMessage)

	// User management
	protected.Get("/users", requires("user.view"), userHandler.GetUsers)
	protected.Get("/users/:id", requires("user.view"), userHandler.GetUser)
	protected.Post("/users", requires("user.create"), userHandler.CreateUser)
	protected.Put("/users/:id", requires("user.update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", requires("user.delete"), userHandler.DeleteUser)
	protected.Put("/users/:id/permissions", requires("user.update_permission"), userHandler.UpdateUserPermissions)

	// Permission catalog (for the grant editor screen)
	protected.Get("/permissions", func(c *fiber.Ctx) error {
		permissions, err := permRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch permissions"})
		}
		return c.JSON(permissions)
	})

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	wsHub.Shutdown()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPermissionsAndMaster creates the default permission catalog and a
// master user if they don't exist yet
func seedPermissionsAndMaster(db *gorm.DB) {
	permRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := permRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed permissions: %v", err)
	}

	username := os.Getenv("MASTER_USERNAME")
	if username == "" {
		username = "master"
	}

	if _, err := userRepo.FindByUsername(username); err == nil {
		return
	}

	password := os.Getenv("MASTER_PASSWORD")
	if password == "" {
		password = "master123"
		log.Println("Warning: MASTER_PASSWORD not set, using default")
	}

	master := &model.User{
		Username: username,
		FullName: "Master User",
		UserType: model.UserTypeMaster,
		IsActive: true,
	}
	master.CreatedBy = "system"
	master.UpdatedBy = "system"

	if err := master.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash master password: %v", err)
		return
	}

	if err := userRepo.Create(master); err != nil {
		log.Printf("Warning: Failed to create master user: %v", err)
	} else {
		log.Printf("Master user created: %s", username)
	}
}
