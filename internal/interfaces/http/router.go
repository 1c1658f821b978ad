package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clinica-api/internal/application/attendance"
	"github.com/jhoicas/clinica-api/internal/application/auth"
	"github.com/jhoicas/clinica-api/internal/application/billing"
	"github.com/jhoicas/clinica-api/internal/application/clinic"
	"github.com/jhoicas/clinica-api/internal/application/pharmacy"
	"github.com/jhoicas/clinica-api/internal/application/records"
	"github.com/jhoicas/clinica-api/internal/application/scheduling"
	"github.com/jhoicas/clinica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	AttendanceUC    *attendance.UseCase
	OrganizationUC  *clinic.OrganizationUseCase
	NetworkUC       *clinic.NetworkUseCase
	AppointmentUC   *scheduling.UseCase
	MedicalRecordUC *records.UseCase
	MedicineUC      *pharmacy.MedicineUseCase
	MedicineGroupUC *pharmacy.MedicineGroupUseCase
	BatchUC         *pharmacy.BatchUseCase
	CreateInvoice   *billing.CreateInvoiceUseCase
	InvoicePDF      *billing.PDFUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Asistencia (protegido)
	attendanceGroup := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup.Post("/", attendanceHandler.Create)
	attendanceGroup.Get("/", attendanceHandler.List)
	attendanceGroup.Get("/:id", attendanceHandler.GetByID)
	attendanceGroup.Put("/:id", attendanceHandler.Update)
	attendanceGroup.Delete("/:id", RequireRole(entity.RoleAdmin), attendanceHandler.Delete)

	// Organización y redes (protegido; escritura solo admin)
	organizations := protected.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizations.Post("/", RequireRole(entity.RoleAdmin), organizationHandler.Create)
	organizations.Get("/", organizationHandler.List)
	organizations.Get("/:id", organizationHandler.GetByID)
	organizations.Put("/:id", RequireRole(entity.RoleAdmin), organizationHandler.Update)
	organizations.Delete("/:id", RequireRole(entity.RoleAdmin), organizationHandler.Delete)

	networks := protected.Group("/networks")
	networkHandler := NewNetworkHandler(deps.NetworkUC)
	networks.Post("/", RequireRole(entity.RoleAdmin), networkHandler.Create)
	networks.Get("/", networkHandler.List)
	networks.Get("/:id", networkHandler.GetByID)
	networks.Put("/:id", RequireRole(entity.RoleAdmin), networkHandler.Update)
	networks.Delete("/:id", RequireRole(entity.RoleAdmin), networkHandler.Delete)

	// Citas (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Historiales clínicos (protegido; solo personal clínico)
	medicalRecords := protected.Group("/medical-records", RequireRole(entity.RoleAdmin, entity.RoleDoctor))
	medicalRecordHandler := NewMedicalRecordHandler(deps.MedicalRecordUC)
	medicalRecords.Post("/", medicalRecordHandler.Create)
	medicalRecords.Get("/", medicalRecordHandler.List)
	medicalRecords.Get("/:id", medicalRecordHandler.GetByID)
	medicalRecords.Put("/:id", medicalRecordHandler.Update)
	medicalRecords.Delete("/:id", medicalRecordHandler.Delete)

	// Grupos y medicamentos (protegido)
	medicineGroups := protected.Group("/medicine-groups")
	medicineGroupHandler := NewMedicineGroupHandler(deps.MedicineGroupUC)
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicineGroups.Post("/", medicineGroupHandler.Create)
	medicineGroups.Get("/", medicineGroupHandler.List)
	medicineGroups.Get("/:id", medicineGroupHandler.GetByID)
	medicineGroups.Put("/:id", medicineGroupHandler.Update)
	medicineGroups.Delete("/:id", medicineGroupHandler.Delete)
	medicineGroups.Get("/:groupId/medicines", medicineHandler.ListByGroup)

	medicines := protected.Group("/medicines")
	batchHandler := NewBatchHandler(deps.BatchUC)
	medicines.Post("/", medicineHandler.Create)
	medicines.Get("/", medicineHandler.List)
	medicines.Get("/:id", medicineHandler.GetByID)
	medicines.Put("/:id", medicineHandler.Update)
	medicines.Delete("/:id", medicineHandler.Delete)
	medicines.Get("/:medicineId/batches", batchHandler.ListByMedicine)

	// Lotes (protegido)
	batches := protected.Group("/batches")
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id", batchHandler.Update)
	batches.Delete("/:id", batchHandler.Delete)

	// Facturación del punto de venta (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
