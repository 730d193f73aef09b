package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/gateway"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	"github.com/student-hub/booking-portal/internal/service"
	"github.com/student-hub/booking-portal/internal/session"
	"github.com/student-hub/booking-portal/pkg/config"
	"github.com/student-hub/booking-portal/pkg/logger"
	reqidmiddleware "github.com/student-hub/booking-portal/pkg/middleware/requestid"
	securemiddleware "github.com/student-hub/booking-portal/pkg/middleware/secure"
)

// NewRouter wires the static route table: every client route is a pair of
// an access guard and a screen handler, and unmatched paths land on the
// login screen.
func NewRouter(cfg *config.Config, logr *zap.Logger, sessions *session.Store, gw *gateway.Client, metricsSvc *service.MetricsService) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(securemiddleware.Headers())
	r.Use(middleware.Metrics(metricsSvc))

	auth := NewAuthHandler(gw, sessions, logr)
	dashboards := NewDashboardHandler(gw, gw, logr)
	rooms := NewRoomsHandler(gw, logr)
	buildings := NewBuildingsHandler(gw, logr)
	resources := NewResourcesHandler(gw, logr)
	policies := NewPoliciesHandler(gw, logr)
	adminFeedbacks := NewAdminFeedbacksHandler(gw, logr)
	userRooms := NewUserRoomsHandler(gw, logr)
	userResources := NewUserResourcesHandler(gw, logr)
	userFeedback := NewUserFeedbackHandler(gw, logr)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)
	r.GET("/signup", auth.ShowSignup)
	r.POST("/signup", auth.Signup)

	admin := r.Group("/admin", middleware.RequireRole(sessions, models.RoleAdmin))
	{
		admin.GET("", dashboards.Admin)
		admin.GET("/rooms", rooms.Show)
		admin.POST("/rooms/create", rooms.Create)
		admin.POST("/rooms/modify", rooms.Modify)
		admin.POST("/rooms/delete", rooms.Delete)
		admin.GET("/building", buildings.Show)
		admin.POST("/building/create", buildings.Create)
		admin.POST("/building/modify", buildings.Modify)
		admin.POST("/building/delete", buildings.Delete)
		admin.GET("/resources", resources.Show)
		admin.POST("/resources/create", resources.Create)
		admin.POST("/resources/modify", resources.Modify)
		admin.POST("/resources/delete", resources.Delete)
		admin.GET("/policy", policies.Show)
		admin.POST("/policy/create", policies.Create)
		admin.POST("/policy/modify", policies.Modify)
		admin.POST("/policy/delete", policies.Delete)
		admin.GET("/feedbacks", adminFeedbacks.Show)
	}

	user := r.Group("/user", middleware.RequireRole(sessions, models.RoleStudent))
	{
		user.GET("", dashboards.User)
		user.GET("/rooms", userRooms.Show)
		user.POST("/rooms/search", userRooms.Search)
		user.POST("/rooms/book", userRooms.Book)
		user.GET("/resources", userResources.Show)
		user.POST("/resources/search", userResources.Search)
		user.POST("/resources/rent", userResources.Rent)
		user.GET("/feedbacks", userFeedback.Show)
		user.POST("/feedbacks/resource", userFeedback.SubmitResource)
		user.POST("/feedbacks/room", userFeedback.SubmitRoom)
	}

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	return r
}
