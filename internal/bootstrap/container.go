package bootstrap

import (
	"log"

	"github.com/martinsuhendra/manta-sub002/internal/config"
	"github.com/martinsuhendra/manta-sub002/internal/controller"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/mailer"
	"github.com/martinsuhendra/manta-sub002/internal/repository/memory"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/internal/service"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/events"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/freeze"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/quota"
	paymidtrans "github.com/martinsuhendra/manta-sub002/pkg/payment/midtrans"
	"github.com/martinsuhendra/manta-sub002/pkg/payment/settlement"

	pkgNats "github.com/martinsuhendra/manta-sub002/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	MembershipController controller.IMembershipController
	FreezeController     controller.IFreezeController
	PaymentController    controller.IPaymentController
	BookingController    controller.IBookingController
	CatalogController    controller.ICatalogController
	ScheduleController   controller.IScheduleController
	AdminController      controller.IAdminController

	// Background Services (Exposed for main.go to run)
	NotifierService service.INotifierService
	FreezeService   service.IFreezeService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional, domain events are dropped when unavailable)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	eventPublisher := events.NewNatsPublisher(natsPub, sysLogger)

	// 3. Domain Components
	lifecycleController := lifecycle.NewController(sysLogger)
	quotaLedger := quota.NewLedger(sysLogger)
	freezeWorkflow := freeze.NewWorkflow(sysLogger, lifecycleController, eventPublisher)
	settler := settlement.NewSettler(sysLogger, lifecycleController, eventPublisher)

	gateway := paymidtrans.NewGateway(paymidtrans.Config{
		ServerKey:    cfg.Midtrans.ServerKey,
		ClientKey:    cfg.Midtrans.ClientKey,
		IsProduction: cfg.Midtrans.IsProduction,
		SnapTokenTTL: cfg.Midtrans.SnapTokenTTL,
		FinishURL:    cfg.App.ClientURL + "/payment/finish",
	}, sysLogger)

	// In-memory storage for schedule templates
	templateRepo := memory.NewTemplateRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.PaymentTopic, pubSub)
	notifierService := service.NewNotifierService(
		pubSub,
		cfg.Keys.PaymentTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory)
	membershipService := service.NewMembershipService(uowFactory, lifecycleController, quotaLedger, gateway)
	freezeService := service.NewFreezeService(uowFactory, freezeWorkflow, emailService)
	paymentService := service.NewPaymentService(uowFactory, gateway, settler, publisherService)
	bookingService := service.NewBookingService(uowFactory, quotaLedger)
	catalogService := service.NewCatalogService(uowFactory)
	scheduleService := service.NewScheduleService(uowFactory, templateRepo)
	adminService := service.NewAdminService(uowFactory)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		MembershipController: controller.NewMembershipController(membershipService),
		FreezeController:     controller.NewFreezeController(freezeService, adminService),
		PaymentController:    controller.NewPaymentController(paymentService),
		BookingController:    controller.NewBookingController(bookingService),
		CatalogController:    controller.NewCatalogController(catalogService),
		ScheduleController:   controller.NewScheduleController(scheduleService),
		AdminController:      controller.NewAdminController(adminService),

		NotifierService: notifierService,
		FreezeService:   freezeService,
	}
}
