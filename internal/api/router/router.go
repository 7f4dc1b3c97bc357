package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shift-scheduler/backend/config"
	"shift-scheduler/backend/internal/api/handler"
	"shift-scheduler/backend/internal/api/middleware"
	"shift-scheduler/backend/pkg/jwt"
	"shift-scheduler/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	managerOnly := middleware.ManagerOnly(cfg.Schedule.AuthorizedRoles)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 员工模块
			employees := authorized.Group("/employees")
			{
				employees.GET("", h.Employee.List)
				employees.POST("", managerOnly, h.Employee.Create)
				employees.DELETE("/:id", managerOnly, h.Employee.Delete)
			}

			// 班次类型模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.List)
				shifts.POST("", managerOnly, h.Shift.Create)
			}

			// 排班模块
			schedules := authorized.Group("/schedule")
			{
				schedules.GET("/week", h.Schedule.GetWeek)
				schedules.GET("/me", h.Schedule.GetMine)
				schedules.POST("/assign", managerOnly, h.Schedule.Assign)
				schedules.GET("/conflicts", managerOnly, h.Schedule.CheckConflicts)
			}

			// 调休模块
			timeoff := authorized.Group("/timeoff")
			{
				timeoff.POST("", h.TimeOff.Submit)
				timeoff.GET("/mine", h.TimeOff.ListMine)
				timeoff.GET("/pending", managerOnly, h.TimeOff.ListPending)
				timeoff.PATCH("/:id", managerOnly, h.TimeOff.Decide)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/week", managerOnly, h.Export.ExportWeek)
				export.GET("/me", h.Export.ExportMyWeek)
			}
		}
	}

	return r
}
