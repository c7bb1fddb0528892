package api

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rafif143/basket/config"
	"github.com/rafif143/basket/infra/queue"
	"github.com/rafif143/basket/internal/api/rest/handlers"
	"github.com/rafif143/basket/internal/domain"
	"github.com/rafif143/basket/internal/helper"
	"github.com/rafif143/basket/internal/repository"
	"github.com/rafif143/basket/internal/services"
	"github.com/rafif143/basket/internal/session"
	"github.com/rafif143/basket/pkg/cloudinary"
	"github.com/rafif143/basket/pkg/whatsapp"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- Middleware ----------
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(corsConfig(cfg.BaseURL)))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20240911

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Registration{},
		&domain.Setting{},
		&domain.Admin{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	uploader := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)
	sessions := session.NewManager(session.NewMemoryStore(), session.NewMemoryStore(), time.Now)

	// ---------- Repositories ----------
	registrationRepo := repository.NewRegistrationRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	seedAdmin(adminRepo, cfg)
	seedDefaultTemplate(settingRepo)

	// ---------- Services ----------
	settingsSvc := services.NewSettingsService(settingRepo)
	registrationSvc := services.NewRegistrationService(registrationRepo, settingsSvc, kafkaProducer)
	authSvc := services.NewAuthService(adminRepo, authHelper, sessions)

	// ---------- Consumer ----------
	if cfg.KafkaBroker != "" && cfg.KafkaGroupID != "" {
		notifier := services.NewNotificationService(settingsSvc)
		consumer := queue.NewKafkaConsumer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID, notifier)
		go consumer.Listen()
		log.Println("notification consumer listening")
	}

	// ---------- Handlers ----------
	handlers.NewRegistrationHandler(registrationSvc, authHelper).SetupRoutes(app)
	handlers.NewUploadHandler(uploader).SetupRoutes(app)
	handlers.NewSettingsHandler(settingsSvc, authHelper).SetupRoutes(app)
	handlers.NewAuthHandler(authSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// corsConfig allows credentials only for a concrete origin; Fiber refuses a
// credentialed wildcard.
func corsConfig(baseURL string) cors.Config {
	c := cors.Config{
		AllowOrigins: baseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}
	if baseURL != "*" {
		c.AllowCredentials = true
	}
	return c
}

func seedAdmin(repo repository.AdminRepository, cfg config.Config) {
	// login lowercases the email before lookup, so the seed must too
	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))

	if email == "" || cfg.AdminPassword == "" {
		log.Println("no admin credentials configured - skip admin seed")
		return
	}

	if _, err := repo.FindAdminByEmail(email); err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("hash admin password error: %v", err)
		return
	}

	if _, err := repo.CreateAdmin(&domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  cfg.AdminName,
	}); err != nil {
		log.Printf("seed admin error: %v", err)
		return
	}
	log.Println("admin account seeded")
}

func seedDefaultTemplate(repo repository.SettingRepository) {
	if _, err := repo.GetSetting(domain.SettingWhatsAppTemplate.String()); err == nil {
		return
	}

	desc := "Template pesan WhatsApp untuk notifikasi pendaftaran"
	if _, err := repo.UpsertSetting(
		domain.SettingWhatsAppTemplate.String(),
		whatsapp.DefaultTemplate,
		&desc,
	); err != nil {
		log.Printf("seed whatsapp template error: %v", err)
	}
}
