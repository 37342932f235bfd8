package server

import (
	"time"

	"github.com/andrewthebest/trivia-api/internal/handlers"
	"github.com/andrewthebest/trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New assembles the gin engine: request logging, CORS on every response,
// canonical 404/405 bodies, and the trivia routes.
func New(db *gorm.DB, logger *zap.Logger) *gin.Engine {
	trivia := services.NewTriviaService(db)

	questionHandler := handlers.NewQuestionHandler(trivia)
	categoryHandler := handlers.NewCategoryHandler(trivia)
	quizHandler := handlers.NewQuizHandler(trivia)

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoMethod)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", categoryHandler.ListCategories)
	r.POST("/categories", categoryHandler.CreateCategory)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	r.POST("/quizzes", quizHandler.PlayQuiz)

	return r
}
