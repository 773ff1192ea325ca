package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymclub_backend/internals/configs"
	"gymclub_backend/internals/helpers/storage"
	"gymclub_backend/internals/middlewares"
	authMiddleware "gymclub_backend/internals/middlewares/auth"

	announcementController "gymclub_backend/internals/features/announcements/controller"
	athleteController "gymclub_backend/internals/features/athletes/controller"
	coachController "gymclub_backend/internals/features/coaches/controller"
	galleryController "gymclub_backend/internals/features/gallery/controller"
	"gymclub_backend/internals/features/media"
	mediaController "gymclub_backend/internals/features/media/controller"
	programController "gymclub_backend/internals/features/programs/controller"
	userController "gymclub_backend/internals/features/users/controller"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, store storage.ObjectStore, resolver *storage.Resolver) {
	manager := media.NewManager(db, store, resolver)

	assets := mediaController.NewAssetsController(db, manager, store, resolver, cfg.S3.PresignTTL)
	athletes := athleteController.NewAthleteController(db)
	coaches := coachController.NewCoachController(db)
	programs := programController.NewProgramController(db)
	users := userController.NewUserController(db)
	announcements := announcementController.NewAnnouncementController(db)
	gallery := galleryController.NewGalleryController(store)

	admin := authMiddleware.AdminJWT(cfg.JWTSecret)

	log.Printf("[INFO] asset kinds: %v", media.KindNames())

	// ===================== ASSET SURFACE =====================
	// Listings are public except registrations, which hold guardian
	// contact data. The registrations route must be registered before
	// the :kind wildcard so it wins the match.
	app.Get("/assets/registrations", admin, assets.ListKind("registrations"))
	app.Get("/assets/:kind", assets.List)
	app.Post("/assets/:kind", admin, assets.Create)
	app.Put("/assets/:kind/:id", admin, assets.Update)
	app.Delete("/assets/:kind/:id", admin, assets.Delete)

	// ===================== PUBLIC =====================
	public := app.Group("/api/public")
	public.Get("/programs", programs.List)
	public.Get("/athletes", athletes.List)
	public.Get("/coaches", coaches.List)
	public.Get("/sponsors", assets.ListKind("sponsors"))
	public.Get("/products", assets.ListKind("products"))
	public.Get("/resources", assets.ListKind("resources"))
	public.Get("/gallery", gallery.List)
	public.Get("/announcement", announcements.GetActive)
	public.Post("/tryouts", middlewares.TryoutRateLimiter(), assets.CreateTryout)

	// ===================== ADMIN =====================
	adm := app.Group("/api/a", admin)

	adm.Post("/uploads/presign", assets.Presign)

	adm.Get("/users", users.List)
	adm.Post("/users", users.Create)
	adm.Put("/users/:id", users.Update)
	adm.Delete("/users/:id", users.Delete)

	adm.Get("/athletes", athletes.List)
	adm.Post("/athletes", athletes.Create)
	adm.Put("/athletes/:id", athletes.Update)
	adm.Delete("/athletes/:id", athletes.Delete)

	adm.Get("/coaches", coaches.List)
	adm.Post("/coaches", coaches.Create)
	adm.Put("/coaches/:id", coaches.Update)
	adm.Delete("/coaches/:id", coaches.Delete)

	adm.Get("/programs", programs.List)
	adm.Post("/programs", programs.Create)
	adm.Put("/programs/:id", programs.Update)
	adm.Delete("/programs/:id", programs.Delete)

	adm.Get("/announcement", announcements.Get)
	adm.Put("/announcement", announcements.Upsert)
}
