package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/config"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/handlers"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	usr := handlers.NewUserHandler()
	res := handlers.NewResourceHandler()
	ts := handlers.NewTimesheetHandler()
	lv := handlers.NewLeaveHandler()
	tr := handlers.NewTrainingHandler()
	ln := handlers.NewLearningHandler()
	cert := handlers.NewCertificationHandler()
	cam := handlers.NewCamStatusHandler()
	bm := handlers.NewBoldMindsHandler()
	hol := handlers.NewHolidayHandler()

	e.GET("/health", handlers.Health)

	// ===== Public auth =====
	e.POST("/api/register", auth.Register)
	e.POST("/api/login", auth.Login)

	// ===== Authenticated =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	api := e.Group("/api", authMW)

	api.GET("/session", auth.Session)
	api.POST("/logout", auth.Logout)

	// Resources & custom columns
	api.GET("/resources", res.List)
	api.GET("/resources/:empId", res.GetByEmpID)
	api.GET("/columns", res.ListColumns)

	// Timesheet
	api.GET("/timesheet", ts.List)
	api.GET("/timesheet/weeks", ts.Weeks)
	api.GET("/timesheet/grid", ts.Grid)
	api.POST("/timesheet", ts.Save)
	api.PUT("/timesheet/:id", ts.Update)
	api.DELETE("/timesheet/:id", ts.Delete)

	// Leaves
	api.GET("/leaves", lv.List)
	api.POST("/leaves", lv.Create)
	api.PUT("/leaves/:id", lv.Update)
	api.DELETE("/leaves/:id", lv.Delete)

	// Trainings
	api.GET("/trainings", tr.List)
	api.POST("/trainings", tr.Create)
	api.PUT("/trainings/:id", tr.Update)
	api.DELETE("/trainings/:id", tr.Delete)

	// Learnings
	api.GET("/learnings", ln.List)
	api.POST("/learnings", ln.Create)
	api.PUT("/learnings/:id", ln.Update)
	api.DELETE("/learnings/:id", ln.Delete)

	// Certifications
	api.GET("/certifications", cert.List)
	api.POST("/certifications", cert.Create)
	api.PUT("/certifications/:id", cert.Update)
	api.DELETE("/certifications/:id", cert.Delete)

	// CAM status
	api.GET("/cam-status", cam.List)
	api.GET("/cam-status/grid", cam.Grid)
	api.POST("/cam-status", cam.Save)

	// Bold Minds
	api.GET("/bold-minds", bm.List)
	api.GET("/bold-minds/grid", bm.Grid)
	api.POST("/bold-minds", bm.Save)

	// Holidays
	api.GET("/holidays", hol.List)

	// ===== Admin =====
	admin := e.Group("/api", authMW, middlewares.RequireRole("admin"))

	admin.POST("/resources", res.Create)
	admin.PUT("/resources/:empId", res.Update)
	admin.DELETE("/resources/:id", res.Delete)
	admin.POST("/resources/:id/data", res.UpsertData)
	admin.POST("/columns", res.CreateColumn)
	admin.DELETE("/columns/:name", res.DeleteColumn)

	admin.POST("/holidays", hol.Create)
	admin.PUT("/holidays/:id", hol.Update)
	admin.DELETE("/holidays/:id", hol.Delete)

	admin.GET("/users", usr.List)
	admin.PUT("/users/:id", usr.Update)
	admin.DELETE("/users/:id", usr.Delete)
}
