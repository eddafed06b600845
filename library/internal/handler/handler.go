package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	_ "github.com/Astemirdum/library-catalog/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const sessionCookie = "sessionid"

type Config struct {
	Auth md.AuthConfig
	// ImportBodyLimit caps upload size on POST /imports, e.g. "20M".
	ImportBodyLimit string
	// ImportTimeout bounds an import; the connection deadlines of
	// POST /imports are pushed past it.
	ImportTimeout time.Duration
}

type Handler struct {
	librarySvc LibraryService
	cfg        Config
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger, cfg Config) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		cfg:        cfg,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.Authentication(h.cfg.Auth),
	)

	api.GET("/catalog", h.Dashboard)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books/:id/like", h.ToggleLike)
	api.POST("/books/:id/instances", h.AddInstance)

	api.GET("/authors", h.ListAuthors)
	api.POST("/authors", h.CreateAuthor)
	api.GET("/authors/:id", h.GetAuthor)
	api.PUT("/authors/:id", h.UpdateAuthor)
	api.DELETE("/authors/:id", h.DeleteAuthor)

	api.GET("/genres", h.ListGenres)
	api.GET("/languages", h.ListLanguages)
	api.POST("/languages", h.CreateLanguage)

	api.GET("/loans/mine", h.ListMyLoans)
	api.GET("/loans", h.ListAllLoans)
	api.GET("/loans/overdue", h.ListOverdue)
	api.POST("/instances/:id/checkout", h.Checkout)
	api.POST("/instances/:id/return", h.MarkReturned)
	api.GET("/instances/:id/renew", h.RenewalProposal)
	api.POST("/instances/:id/renew", h.Renew)

	var importLimits []echo.MiddlewareFunc
	if h.cfg.ImportBodyLimit != "" {
		importLimits = append(importLimits, middleware.BodyLimit(h.cfg.ImportBodyLimit))
	}
	api.POST("/imports", h.Import, importLimits...)

	api.POST("/profile", h.RegisterProfile)
	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
	api.GET("/profile/likes", h.ListLikedBooks)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func actor(c echo.Context) policy.Actor {
	return policy.FromContext(c.Request().Context())
}

// sessionKey returns the visitor's session cookie, issuing one when absent.
func sessionKey(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	key := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func paramUUID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return page, size, nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service error kinds onto status codes.
func httpError(err error) error {
	var importErr *errs.ImportError
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrTimeout):
		code = http.StatusServiceUnavailable
	case errors.As(err, &importErr):
		code = http.StatusBadRequest
		if importErr.Stage == errs.StageRow {
			code = http.StatusUnprocessableEntity
		}
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidDate):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnsupportedFormat):
		code = http.StatusUnsupportedMediaType
	}
	return echo.NewHTTPError(code, err.Error())
}
