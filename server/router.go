package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"job-dashboard/handler"
	"job-dashboard/pkg/response"
	"net/http"
)

func NewRouter(logger zerolog.Logger, deps handler.ServiceDependencies) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery(), ErrorHandler())
	r.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, "route not found", http.StatusText(http.StatusNotFound))
	})
	addHealth(r)

	h := handler.NewHTTPHandler(deps)
	api := r.Group("/")
	api.Use(handler.Authenticate())

	jobs := api.Group("/jobs")
	jobs.GET("", h.ListJobs)
	jobs.POST("", h.CreateJob)
	jobs.GET("/:id", h.GetJob)
	jobs.PATCH("/:id", h.UpdateJob)
	jobs.DELETE("/:id", h.DeleteJob)
	jobs.PATCH("/:id/change-status", h.ChangeStatus)
	jobs.PATCH("/:id/assign-member", h.AssignMember)
	jobs.DELETE("/:id/members/:userId", h.UnassignMember)
	jobs.GET("/:id/activity-log", h.ActivityLog)
	jobs.GET("/:id/comments", h.ListComments)
	jobs.POST("/:id/comments", h.CreateComment)

	api.GET("/job-statuses", h.ListStatuses)
	api.GET("/job-statuses/:id/transitions", h.StatusTransitions)

	api.GET("/users", h.ListUsers)
	api.GET("/departments", h.ListDepartments)
	api.GET("/job-titles", h.ListJobTitles)
	api.GET("/job-types", h.ListJobTypes)
	api.GET("/payment-channels", h.ListPaymentChannels)

	me := api.Group("/me")
	me.GET("/preferences/job-table", h.GetJobTablePreference)
	me.PUT("/preferences/job-table", h.SaveJobTablePreference)
	me.GET("/notifications", h.ListNotifications)
	me.PATCH("/notifications/:id/read", h.MarkNotificationRead)

	return r
}

func addHealth(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
}
