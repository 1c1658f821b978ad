package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/clinica-api/internal/application/attendance"
	"github.com/jhoicas/clinica-api/internal/application/auth"
	"github.com/jhoicas/clinica-api/internal/application/billing"
	"github.com/jhoicas/clinica-api/internal/application/clinic"
	apppharmacy "github.com/jhoicas/clinica-api/internal/application/pharmacy"
	"github.com/jhoicas/clinica-api/internal/application/records"
	"github.com/jhoicas/clinica-api/internal/application/scheduling"
	infrapdf "github.com/jhoicas/clinica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/clinica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clinica-api/internal/interfaces/http"
	"github.com/jhoicas/clinica-api/pkg/config"
	"github.com/jhoicas/clinica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	networkRepo := postgres.NewNetworkRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	recordRepo := postgres.NewMedicalRecordRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	groupRepo := postgres.NewMedicineGroupRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	attendanceUC := attendance.NewUseCase(attendanceRepo, orgRepo, networkRepo, log)
	organizationUC := clinic.NewOrganizationUseCase(orgRepo, networkRepo)
	networkUC := clinic.NewNetworkUseCase(networkRepo)
	appointmentUC := scheduling.NewUseCase(appointmentRepo)
	medicalRecordUC := records.NewUseCase(recordRepo)
	medicineUC := apppharmacy.NewMedicineUseCase(medicineRepo, groupRepo, batchRepo)
	medicineGroupUC := apppharmacy.NewMedicineGroupUseCase(groupRepo)
	batchUC := apppharmacy.NewBatchUseCase(batchRepo, medicineRepo)

	// Facturación: el asignador FEFO corre dentro de la transacción del
	// TxRunner con repos ligados a la tx.
	allocator := apppharmacy.NewStockAllocatorService()
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, allocator, medicineRepo, invoiceRepo, log)

	// PDF: recibo de venta con código QR del invoiceId
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Clínica Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		AttendanceUC:    attendanceUC,
		OrganizationUC:  organizationUC,
		NetworkUC:       networkUC,
		AppointmentUC:   appointmentUC,
		MedicalRecordUC: medicalRecordUC,
		MedicineUC:      medicineUC,
		MedicineGroupUC: medicineGroupUC,
		BatchUC:         batchUC,
		CreateInvoice:   createInvoiceUC,
		InvoicePDF:      invoicePDFUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
