package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"la-cave/internal/cache"
	"la-cave/internal/handler"
	"la-cave/internal/handler/auth"
	"la-cave/internal/handler/menu"
	"la-cave/internal/handler/reservations"
	"la-cave/internal/handler/reviews"
	"la-cave/internal/middleware"
	"la-cave/internal/service"
	"la-cave/internal/store"
)

// Deps 路由需要的後端服務
type Deps struct {
	Store       store.Store
	Cache       cache.Cache
	Mailer      service.Mailer
	FrontendURL string
	Started     time.Time
	Version     string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	st := d.Store
	requireAuth := middleware.RequireAuth(st)
	optionalAuth := middleware.OptionalAuth(st)
	adminOnly := []echo.MiddlewareFunc{requireAuth, middleware.RequireAdmin()}

	e.GET("/", handler.WelcomeHandler(d.Version))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/health", handler.HealthHandler(st, d.Cache, d.Started))

	// 註冊、登入與個人資料
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(st))
	apiAuth.POST("/login", auth.LoginHandler(st))
	apiAuth.GET("/me", auth.GetMeHandler(), requireAuth)
	apiAuth.PUT("/profile", auth.UpdateProfileHandler(st), requireAuth)
	apiAuth.POST("/forgotpassword", auth.ForgotPasswordHandler(st, d.Cache, d.Mailer, d.FrontendURL))
	apiAuth.PUT("/resetpassword/:token", auth.ResetPasswordHandler(st, d.Cache))

	// 菜單：讀取公開，異動限管理員
	apiMenu := api.Group("/menu")
	apiMenu.GET("", menu.ListMenuHandler(st))
	apiMenu.GET("/category/:category", menu.ListByCategoryHandler(st))
	apiMenu.GET("/popular/items", menu.ListPopularHandler(st))
	apiMenu.GET("/:id", menu.GetMenuItemHandler(st))
	apiMenu.POST("", menu.CreateMenuItemHandler(st), adminOnly...)
	apiMenu.PUT("/:id", menu.UpdateMenuItemHandler(st), adminOnly...)
	apiMenu.DELETE("/:id", menu.DeleteMenuItemHandler(st), adminOnly...)

	// 訂位：任何人可送出，其餘限管理員
	apiReservations := api.Group("/reservations")
	apiReservations.POST("", reservations.CreateReservationHandler(st), optionalAuth)
	apiReservations.GET("", reservations.ListReservationsHandler(st), adminOnly...)
	apiReservations.GET("/:id", reservations.GetReservationHandler(st), adminOnly...)
	apiReservations.PUT("/:id", reservations.UpdateReservationHandler(st), adminOnly...)

	// 評論：公開列表只含已核准
	apiReviews := api.Group("/reviews")
	apiReviews.GET("", reviews.ListApprovedReviewsHandler(st))
	apiReviews.POST("", reviews.CreateReviewHandler(st), optionalAuth)
	apiReviews.GET("/admin", reviews.ListAllReviewsHandler(st), adminOnly...)
	apiReviews.PUT("/:id", reviews.UpdateReviewStatusHandler(st), adminOnly...)
	apiReviews.DELETE("/:id", reviews.DeleteReviewHandler(st), adminOnly...)
}
