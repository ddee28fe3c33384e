package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Session lifetime

	"bankportal/internal/api"        // Custom package for API handlers
	"bankportal/internal/config"     // Custom package for configuration
	"bankportal/internal/middleware" // Custom package for middleware
	"bankportal/internal/notify"     // Status-change notifications
	"bankportal/internal/service"    // Workflow layer
	"bankportal/internal/session"    // Server-side sessions
	"bankportal/internal/storage"    // Upload store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Upload store for selfies, identity documents and payment proofs
	files, err := storage.NewDiskStore(cfg.UploadDir, cfg.MediaBaseURL)
	if err != nil {
		logrus.Fatalf("failed to prepare upload dir: %v", err)
	}

	// Sessions, notifications and workflow services
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewStore(redisClient, sessionTTL)
	notifier := notify.NewNotifier(&notify.SMTPMailer{Addr: cfg.SMTPAddr}, cfg.SMTPFrom)

	accounts := service.NewAccountService(db)
	banks := service.NewBankService(db)
	deposits := service.NewDepositService(db)
	loans := service.NewLoanService(db)
	admin := service.NewAdminService(db, notifier)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Stored uploads
	r.Static(cfg.MediaBaseURL, cfg.UploadDir)

	// Public routes
	r.GET("/", api.IndexHandler())                                                      // Landing page
	r.GET("/support/", api.SupportHandler())                                            // Support page
	r.GET("/loan/terms/", api.LoanTermsHandler())                                       // Loan terms page
	r.POST("/open-account/", api.RegisterHandler(accounts))                             // Registration endpoint
	r.POST("/login/", api.LoginHandler(accounts, sessions, int(sessionTTL.Seconds()))) // Login endpoint
	r.POST("/logout/", api.LogoutHandler(sessions))                                     // Logout endpoint

	// Portal routes (protected by the session cookie)
	portal := r.Group("/")
	portal.Use(middleware.SessionAuth(sessions, accounts))
	portal.GET("/dashboard/", api.DashboardHandler(banks))                 // Dashboard endpoint
	portal.POST("/link-bank/", api.LinkBankHandler(banks, files))          // Bank linking endpoint
	portal.GET("/link-status/:id/", api.LinkStatusHandler(banks))          // Owner-scoped bank status
	portal.GET("/deposit/", api.FiatDepositInfoHandler())                  // Legacy deposit info
	portal.GET("/deposit/pyusd/", api.DepositPYUSDInfoHandler(cfg))        // Receiving address
	portal.POST("/deposit/pyusd/", api.DepositPYUSDHandler(deposits))      // Stablecoin deposit endpoint
	portal.GET("/deposit/status/", api.DepositStatusHandler(deposits))     // Deposit history endpoint
	portal.POST("/loan/", api.LoanHandler(loans, files))                   // Loan application endpoint
	portal.POST("/loan/:id/fee/", api.UpfrontFeeHandler(loans, files))     // Proof of payment endpoint
	portal.GET("/loan/:id/status/", api.LoanStatusHandler(loans))          // Owner-scoped loan status
	portal.GET("/transfer/", api.NotAvailableHandler("Transfers"))         // Transfer stub
	portal.POST("/transfer/", api.NotAvailableHandler("Transfers"))        // Transfer stub
	portal.GET("/withdraw/", api.NotAvailableHandler("Withdrawals"))       // Withdrawal stub
	portal.POST("/withdraw/", api.NotAvailableHandler("Withdrawals"))      // Withdrawal stub

	// Admin routes (protected, admin only)
	r.POST("/admin/login", api.AdminLoginHandler(accounts, cfg.JWTSecret)) // Staff login endpoint
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.AdminOnly(db))
	adminGroup.GET("/loans", api.ListLoansHandler(admin, redisClient))                        // Loan review list
	adminGroup.GET("/linked-banks", api.ListLinkedBanksHandler(admin, redisClient))           // Bank review list
	adminGroup.GET("/deposits/pyusd", api.ListPYUSDDepositsHandler(admin, redisClient))       // Stablecoin review list
	adminGroup.GET("/deposits", api.ListDepositsHandler(admin, redisClient))                  // Fiat review list
	adminGroup.PATCH("/linked-banks/:id/status", api.SetLinkedBankStatusHandler(admin, redisClient))     // Bank status mutation
	adminGroup.PATCH("/loans/:id/status", api.SetLoanStatusHandler(admin, redisClient))                  // Loan status mutation
	adminGroup.PATCH("/fees/:id/status", api.SetFeeStatusHandler(admin))                                 // Fee status mutation
	adminGroup.PATCH("/fees/:id/transaction-id", api.SetFeeTransactionIDHandler(admin))                  // Fee reference write
	adminGroup.PATCH("/deposits/pyusd/:id/status", api.SetPYUSDDepositStatusHandler(admin, redisClient)) // Stablecoin status mutation
	adminGroup.PATCH("/deposits/:id/status", api.SetDepositStatusHandler(admin, redisClient))            // Fiat status mutation

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
