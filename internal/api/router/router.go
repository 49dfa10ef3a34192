package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"siakad/backend/config"
	"siakad/backend/internal/api/handler"
	"siakad/backend/internal/api/middleware"
	"siakad/backend/internal/model"
	"siakad/backend/pkg/jwt"
	"siakad/backend/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Import.MaxFileSize))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := middleware.RoleAuth(model.RoleAdmin)
	adminOrGuru := middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher)
	guru := middleware.RoleAuth(model.RoleTeacher)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// auth (authenticated)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// accounts (admin)
			users := authorized.Group("/users", admin)
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.GetByID)
				users.POST("", h.User.Create)
				users.PATCH("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
				users.POST("/:id/reset-password", h.User.ResetPassword)
			}

			// students
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.List)
				students.GET("/:id", h.Student.GetByID)
				students.POST("", admin, h.Student.Create)
				students.PATCH("/:id", admin, h.Student.Update)
				students.DELETE("/:id", admin, h.Student.Delete)
				students.POST("/import", admin, h.Student.Import)
			}

			// teachers
			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", h.Teacher.List)
				teachers.GET("/:id", h.Teacher.GetByID)
				teachers.POST("", admin, h.Teacher.Create)
				teachers.PATCH("/:id", admin, h.Teacher.Update)
				teachers.DELETE("/:id", admin, h.Teacher.Delete)
				teachers.POST("/import", admin, h.Teacher.Import)
			}

			// classes
			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.GET("/:id", h.Class.GetByID)
				classes.GET("/:id/students", h.Class.ListStudents)
				classes.POST("", admin, h.Class.Create)
				classes.PATCH("/:id", admin, h.Class.Update)
				classes.DELETE("/:id", admin, h.Class.Delete)
				classes.PUT("/:id/subjects", admin, h.Class.AssignSubjects)
			}

			// subjects
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.GetByID)
				subjects.POST("", admin, h.Subject.Create)
				subjects.PATCH("/:id", admin, h.Subject.Update)
				subjects.DELETE("/:id", admin, h.Subject.Delete)
			}

			// semesters
			semesters := authorized.Group("/semesters")
			{
				semesters.GET("", h.Semester.List)
				semesters.GET("/active", h.Semester.GetActive)
				semesters.GET("/:id", h.Semester.GetByID)
				semesters.POST("", admin, h.Semester.Create)
				semesters.PATCH("/:id", admin, h.Semester.Update)
				semesters.DELETE("/:id", admin, h.Semester.Delete)
				semesters.POST("/:id/activate", admin, h.Semester.Activate)
			}

			// teaching periods
			periods := authorized.Group("/periods")
			{
				periods.GET("", h.Semester.ListPeriods)
				periods.POST("", admin, h.Semester.CreatePeriod)
				periods.PATCH("/:id", admin, h.Semester.UpdatePeriod)
				periods.DELETE("/:id", admin, h.Semester.DeletePeriod)
			}

			// schedules
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("", h.Schedule.List)
				schedules.GET("/:id", h.Schedule.GetByID)
				schedules.POST("", admin, h.Schedule.Create)
				schedules.PATCH("/:id", admin, h.Schedule.Update)
				schedules.DELETE("/:id", admin, h.Schedule.Delete)
				schedules.POST("/import", admin, h.Schedule.Import)
			}

			// attendance
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.List)
				attendance.GET("/recap", h.Attendance.Recap)
				attendance.POST("", guru, h.Attendance.Record)
				attendance.POST("/bulk", guru, h.Attendance.RecordBulk)
			}

			// grades
			grades := authorized.Group("/grades")
			{
				grades.GET("", h.Grade.List)
				grades.GET("/summary", h.Grade.Summary)
				grades.GET("/:id", h.Grade.GetByID)
				grades.POST("", guru, h.Grade.Create)
				grades.PATCH("/:id", adminOrGuru, h.Grade.Update)
				grades.DELETE("/:id", adminOrGuru, h.Grade.Delete)
			}

			// lesson plans (RPP)
			lessonPlans := authorized.Group("/lesson-plans")
			{
				lessonPlans.GET("", adminOrGuru, h.LessonPlan.List)
				lessonPlans.GET("/:id", adminOrGuru, h.LessonPlan.GetByID)
				lessonPlans.POST("", guru, h.LessonPlan.Create)
				lessonPlans.PATCH("/:id", guru, h.LessonPlan.Update)
				lessonPlans.DELETE("/:id", adminOrGuru, h.LessonPlan.Delete)
				lessonPlans.POST("/:id/review", admin, h.LessonPlan.Review)
			}

			// class activities
			activities := authorized.Group("/activities")
			{
				activities.GET("", h.Activity.List)
				activities.GET("/:id", h.Activity.GetByID)
				activities.POST("", guru, h.Activity.Create)
				activities.PATCH("/:id", guru, h.Activity.Update)
				activities.DELETE("/:id", adminOrGuru, h.Activity.Delete)
			}

			// announcements
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.List)
				announcements.GET("/:id", h.Announcement.GetByID)
				announcements.POST("", admin, h.Announcement.Create)
				announcements.PATCH("/:id", admin, h.Announcement.Update)
				announcements.DELETE("/:id", admin, h.Announcement.Delete)
				announcements.POST("/:id/publish", admin, h.Announcement.Publish)
			}

			// exports
			export := authorized.Group("/export")
			{
				export.GET("/students", adminOrGuru, h.Export.Students)
				export.GET("/teachers", admin, h.Export.Teachers)
				export.GET("/grades", adminOrGuru, h.Export.Grades)
				export.GET("/schedule", h.Export.Schedule)
				export.GET("/schedule.ics", h.Export.ScheduleICS)
				export.GET("/attendance-recap", adminOrGuru, h.Export.Recap)
			}
		}
	}

	return r
}
