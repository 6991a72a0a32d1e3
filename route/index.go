package route

import (
	"database/sql"

	"achievement-portal/app/gateway"
	models "achievement-portal/app/models/postgresql"
	repoMongo "achievement-portal/app/repository/mongodb"
	repoPg "achievement-portal/app/repository/postgresql"
	achievementService "achievement-portal/app/service/mongodb"
	pgService "achievement-portal/app/service/postgresql"
	"achievement-portal/app/service/statistics"
	"achievement-portal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(app *fiber.App, db *sql.DB, mongoDB *mongo.Database) {
	// Repositories
	userRepo := repoPg.NewUserRepository(db)
	achRepo := repoPg.NewAchievementRepository(db)
	typeRepo := repoPg.NewAchievementTypeRepository(db)
	detailRepo := repoMongo.NewAchievementDetailRepository(mongoDB)

	// Services
	authService := pgService.NewAuthService(userRepo)
	adminService := pgService.NewAdminService(userRepo, typeRepo)
	achService := achievementService.NewAchievementService(detailRepo, achRepo, typeRepo)
	statsService := statistics.NewStatisticsService(
		statistics.NewAggregator(gateway.NewPostgresGateway(db)),
	)

	app.Static("/uploads", "./uploads")
	api := app.Group("/api/v1")

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/login", authService.Login)
	auth.Get("/profile",
		middleware.AuthRequired(),
		authService.Profile)

	// User administration
	users := api.Group("/users",
		middleware.AuthRequired(),
		middleware.RoleAllowed(models.RoleAdmin))
	users.Get("/", adminService.GetAllUsers)
	users.Get("/:id", adminService.GetUserByID)
	users.Post("/", adminService.CreateUser)
	users.Put("/:id", adminService.UpdateUser)
	users.Delete("/:id", adminService.DeleteUser)

	// Achievement workflow
	ach := api.Group("/achievements", middleware.AuthRequired())
	ach.Get("/", achService.GetAllAchievements)
	ach.Get("/:id", achService.GetAchievementDetail)

	studentOnly := middleware.RoleAllowed(models.RoleStudent)
	ach.Post("/", studentOnly, achService.CreateAchievement)
	ach.Post("/:id/submit", studentOnly, achService.SubmitAchievement)
	ach.Post("/:id/attachments", studentOnly, achService.UploadAttachment)

	teacherOnly := middleware.RoleAllowed(models.RoleTeacher)
	ach.Post("/:id/approve", teacherOnly, achService.ApproveAchievement)
	ach.Post("/:id/reject", teacherOnly, achService.RejectAchievement)

	// Reference data
	api.Get("/achievement-types",
		middleware.AuthRequired(),
		achService.GetAchievementTypes)
	api.Post("/achievement-types",
		middleware.AuthRequired(),
		middleware.RoleAllowed(models.RoleAdmin),
		adminService.CreateAchievementType)

	// Dashboards
	dash := api.Group("/dashboard", middleware.AuthRequired())
	dash.Get("/student",
		middleware.RoleAllowed(models.RoleStudent),
		statsService.GetStudentDashboard)
	dash.Get("/teacher",
		middleware.RoleAllowed(models.RoleTeacher),
		statsService.GetTeacherDashboard)
	dash.Get("/teacher/summary",
		middleware.RoleAllowed(models.RoleTeacher),
		statsService.GetTeacherSummary)
}
