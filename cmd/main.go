package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/anayon/examhub/config"
	"github.com/anayon/examhub/database"
	_ "github.com/anayon/examhub/docs" // Swagger docs - auto-generated
	adminctrl "github.com/anayon/examhub/internal/controller/admin"
	userctrl "github.com/anayon/examhub/internal/controller/user"
	"github.com/anayon/examhub/internal/logger"
	"github.com/anayon/examhub/internal/rbac"
	"github.com/anayon/examhub/internal/repository"
	"github.com/anayon/examhub/internal/service"
)

// @title ExamHub API
// @version 1.0
// @description Exam lifecycle and grading backend: time-windowed exams over a hierarchical question bank, at-most-once graded attempts, and reporting.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			rbac.NewTable,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewExamResultRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewExamService,
			service.NewSubmissionService,
			service.NewStatisticsService,
		),

		// Controllers layer
		fx.Provide(
			adminctrl.NewAdminExamController,
			adminctrl.NewReportController,
			userctrl.NewUserExamController,
		),

		fx.Invoke(MigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Structured request logging through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// Tag every request with an ID for log correlation
	r.Use(func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("request_id", requestID)
		ctx.Header("X-Request-Id", requestID)
		ctx.Next()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-Id", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// "HH:MM" time-of-day fields on exam payloads
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil
		})
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	roles *rbac.Table,
	adminExamCtrl *adminctrl.AdminExamController,
	reportCtrl *adminctrl.ReportController,
	userExamCtrl *userctrl.UserExamController,
) {
	// Admin routes (gateway-authenticated, role-gated here)
	adminGroup := router.Group("/api/v1/admin")
	{
		examsAdmin := adminGroup.Group("/exams", rbac.Require(roles, rbac.ManageExams))
		examsAdmin.POST("", adminExamCtrl.CreateExam)
		examsAdmin.PUT("/:exam_id", adminExamCtrl.UpdateExam)
		examsAdmin.DELETE("/:exam_id", adminExamCtrl.DeleteExam)

		questionsAdmin := adminGroup.Group("/questions", rbac.Require(roles, rbac.ManageExams))
		questionsAdmin.GET("", adminExamCtrl.ListQuestions)

		reports := adminGroup.Group("/reports", rbac.Require(roles, rbac.ViewReports))
		reports.GET("", reportCtrl.AdminReport)
		reports.GET("/exams/:exam_id", reportCtrl.ExamStatistics)
		reports.GET("/statistics", reportCtrl.AllExamStatistics)
		reports.GET("/participation", reportCtrl.ExamParticipation)
	}

	// User routes
	userGroup := router.Group("/api/v1")
	{
		userGroup.GET("/exams", userExamCtrl.ListExams)
		userGroup.GET("/exams/:exam_id", userExamCtrl.GetExam)
		userGroup.POST("/exams/:exam_id/start", userExamCtrl.StartExam)
		userGroup.POST("/exams/:exam_id/submit", userExamCtrl.SubmitExam)
		userGroup.POST("/exams/:exam_id/practice", userExamCtrl.SubmitPractice)
		userGroup.GET("/exams/:exam_id/attempt-status", userExamCtrl.CheckAttempt)
		userGroup.GET("/users/:user_id/results", userExamCtrl.UserResults)
		userGroup.GET("/users/:user_id/history", userExamCtrl.UserHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ExamHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
