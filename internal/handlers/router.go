package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsage/skillsage-service/internal/config"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/services"
	"github.com/skillsage/skillsage-service/internal/utils"
)

type HandlerManager struct {
	userHandler      *UserHandler
	courseHandler    *CourseHandler
	chatHandler      *ChatHandler
	skillHandler     *SkillHandler
	activityHandler  *ActivityHandler
	interviewHandler *InterviewHandler
	resumeHandler    *ResumeHandler
	adminHandler     *AdminHandler
	authMiddleware   *CasdoorAuthMiddleware
	repo             repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	cfg *config.Config,
	logger utils.Logger,
) *HandlerManager {
	authMiddleware := NewCasdoorAuthMiddleware(cfg.Casdoor, cfg.IsDevelopment(), repo.User(), logger)

	return &HandlerManager{
		userHandler:      NewUserHandler(serviceManager.User(), logger),
		courseHandler:    NewCourseHandler(serviceManager.Course(), logger),
		chatHandler:      NewChatHandler(serviceManager.Chat(), logger),
		skillHandler:     NewSkillHandler(serviceManager.Skill(), logger),
		activityHandler:  NewActivityHandler(serviceManager.Activity(), logger),
		interviewHandler: NewInterviewHandler(serviceManager.Interview(), logger),
		resumeHandler:    NewResumeHandler(serviceManager.Resume(), serviceManager.Recommendation(), logger),
		adminHandler:     NewAdminHandler(serviceManager.User(), serviceManager.Course(), serviceManager.Activity(), logger),
		authMiddleware:   authMiddleware,
		repo:             repo,
	}
}

// SetupRoutes registers all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(hm.authMiddleware.AuthMiddleware())
	{
		// Bootstrap-on-first-login; any authenticated caller.
		api.POST("/users", hm.userHandler.Bootstrap)

		// Profile access: the owner or an admin.
		user := api.Group("/user")
		user.Use(RequireOwnerOrAdmin(paramOwner("id")))
		{
			user.GET("/:id", hm.userHandler.GetUser)
			user.PATCH("/:id", hm.userHandler.UpdateUser)
		}

		// Catalog reads are open to every authenticated role.
		courses := api.Group("/courses")
		{
			courses.GET("", hm.courseHandler.ListCourses)
			courses.GET("/search", hm.courseHandler.SearchCourses)
			courses.GET("/recommended/:userId", RequireOwnerOrAdmin(paramOwner("userId")), hm.courseHandler.RecommendedCourses)
		}

		api.GET("/chat/:userId", RequireOwnerOrAdmin(paramOwner("userId")), hm.chatHandler.History)
		api.POST("/chat", RequireOwnerOrAdmin(bodyUserOwner()), hm.chatHandler.Send)

		api.GET("/skills/:userId", RequireOwnerOrAdmin(paramOwner("userId")), hm.skillHandler.ListSkills)
		api.POST("/skills", RequireOwnerOrAdmin(bodyUserOwner()), hm.skillHandler.UpsertSkill)

		api.GET("/activities/:userId", RequireOwnerOrAdmin(paramOwner("userId")), hm.activityHandler.ListActivities)
		api.POST("/activities", RequireOwnerOrAdmin(bodyUserOwner()), hm.activityHandler.RecordActivity)

		api.GET("/interviews/:userId", RequireOwnerOrAdmin(paramOwner("userId")), hm.interviewHandler.ListSessions)
		interview := api.Group("/interview")
		{
			interview.POST("/question", hm.interviewHandler.Question)
			interview.POST("/analyze", RequireOwnerOrAdmin(bodyUserOwner()), hm.interviewHandler.Analyze)
		}

		api.POST("/recommendations", hm.resumeHandler.Recommend)

		resume := api.Group("/resume")
		{
			resume.POST("/analyze", hm.resumeHandler.Analyze)
			resume.POST("/cover-letter", hm.resumeHandler.CoverLetter)
			resume.POST("/roast", hm.resumeHandler.Roast)
		}

		// Back-office: admins only.
		admin := api.Group("/admin")
		admin.Use(RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", hm.adminHandler.ListUsers)
			admin.PATCH("/users/:id/active", hm.adminHandler.SetUserActive)
			admin.POST("/courses", hm.adminHandler.CreateCourse)
			admin.PUT("/courses/:id", hm.adminHandler.UpdateCourse)
			admin.GET("/activities", hm.adminHandler.ListActivities)
			admin.GET("/activities/export", hm.adminHandler.ExportActivities)
		}
	}

	router.GET("/health", hm.healthCheck)
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": "skillsage-service",
	})
}

// paramOwner resolves the resource owner from a path parameter.
func paramOwner(param string) func(c *gin.Context) string {
	return func(c *gin.Context) string {
		return c.Param(param)
	}
}

// bodyUserOwner resolves the resource owner from the request body's
// user_id field, restoring the body for the downstream handler.
func bodyUserOwner() func(c *gin.Context) string {
	return func(c *gin.Context) string {
		var body struct {
			UserID string `json:"user_id"`
		}
		raw, err := c.GetRawData()
		if err != nil {
			return ""
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		if err := json.Unmarshal(raw, &body); err != nil {
			return ""
		}
		return body.UserID
	}
}
