package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merowoda-service/internal/config"
	"merowoda-service/internal/email"
	"merowoda-service/internal/middleware"
	"merowoda-service/internal/service"
	"merowoda-service/internal/store"
	httptransport "merowoda-service/internal/transport/http"
	"merowoda-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var startTime time.Time

func main() {
	startTime = time.Now()
	cfg := config.Load()
	store.InitDB(cfg)

	emailSender := email.NewSender(cfg)
	dataStore := store.NewStore(store.GetDB())

	// Notice attachment storage is optional; uploads 500 until configured.
	var uploader service.AttachmentUploader
	r2Config := utils.NoticeR2Config{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		AccessKeySecret: cfg.R2AccessKeySecret,
		BucketName:      cfg.R2BucketName,
		PublicURL:       cfg.R2PublicURL,
	}
	if r2Config.Configured() {
		r2Client, err := utils.NewNoticeR2Client(r2Config)
		if err != nil {
			log.Fatalf("❌ [R2] Failed to initialize client: %v", err)
		}
		uploader = r2Client
		log.Println("✅ [R2] Notice attachment client initialized")
	} else {
		log.Println("⚠️ [R2] Not configured — notice attachment uploads disabled")
	}

	subscriptions := service.NewSubscriptionService(dataStore, emailSender)
	donations := service.NewDonationService(dataStore, emailSender)
	broadcasts := service.NewBroadcastService(dataStore, emailSender)
	notices := service.NewNoticeService(dataStore, uploader)
	handler := httptransport.NewHandler(subscriptions, donations, broadcasts, notices)
	log.Println("✅ [SERVICE] Services & handler initialized")

	app := fiber.New(fiber.Config{
		AppName:      "merowoda-service",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-User-ID,X-User-Roles",
		MaxAge:       86400,
	}))

	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${ua}\n",
	}))

	// 1. Subscription routes (public)
	app.Get("/user-messages", handler.GetUserMessages)
	app.Post("/user-messages", handler.Subscribe)
	app.Put("/user-messages", handler.EditSubscription)
	log.Println("✅ [ROUTES] Registered subscription routes: /user-messages")

	// 2. Donation routes
	app.Post("/donate", handler.Donate)
	app.Get("/donations/:email", handler.DonationHistory)
	app.Get("/donations", middleware.RequireLogin(), middleware.RequireStaffRole(), handler.AllDonations)
	log.Println("✅ [ROUTES] Registered donation routes: /donate, /donations")

	// 3. Staff broadcast
	app.Post("/post-information", middleware.RequireLogin(), middleware.RequireStaffRole(), handler.PostInformation)
	log.Println("✅ [ROUTES] Registered broadcast route: /post-information")

	// 4. Notice board
	app.Get("/notices", handler.ListNotices)
	staffNotices := app.Group("/notices", middleware.RequireLogin(), middleware.RequireStaffRole())
	staffNotices.Post("/", handler.CreateNotice)
	staffNotices.Post("/upload", handler.UploadNoticeAttachment)
	staffNotices.Delete("/:id", handler.DeleteNotice)
	log.Println("✅ [ROUTES] Registered notice routes: /notices")

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Round(time.Second)
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         "merowoda-service",
			"uptime":          uptime.String(),
			"timestamp":       time.Now().UTC().Format(time.RFC3339),
			"uploads_enabled": uploader != nil,
		})
	})
	log.Println("✅ [ROUTES] Registered /health")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 [SHUTDOWN] Graceful shutdown initiated...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ [SHUTDOWN] Error: %v", err)
		}
	}()

	log.Printf("🚀 merowoda-service starting...")
	log.Printf("   🔗 Listening on port: %s", cfg.ServerPort)
	log.Printf("   🌐 CORS allowed origins: %s", cfg.AllowedOrigins)
	log.Printf("   📧 SMTP sender: %s <%s>", cfg.SMTPFromName, cfg.SMTPFrom)
	log.Println("✅ Server ready.")

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ [STARTUP] Server failed to start: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var errMsg string
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		errMsg = e.Message
	} else {
		errMsg = err.Error()
	}
	log.Printf("🔥 [ERROR] [%d] %s %s → %v | IP=%s | UA=%s",
		code,
		c.Method(),
		c.Path(),
		errMsg,
		c.IP(),
		c.Get("User-Agent"),
	)
	return c.Status(code).JSON(fiber.Map{
		"error": "something went wrong",
	})
}
