package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Astemirdum/library-catalog/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// AuthConfig selects which credentials Authentication accepts.
type AuthConfig struct {
	// JWTKey verifies HS256 bearer tokens. Empty rejects every bearer token.
	JWTKey []byte
	// GatewaySecret lets a fronting gateway assert the caller through the
	// X-User-* headers. Headers are trusted only when the request carries the
	// same value in X-Gateway-Secret; with no secret they are ignored.
	GatewaySecret string
}

// Authentication resolves the caller from a bearer JWT or, behind the gateway,
// from the X-User-* headers. Requests without credentials pass through anonymous;
// capability checks happen in the service layer.
func Authentication(cfg AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			var id auth.Identity

			if authorization := req.Header.Get(AuthorizationHeader); authorization != "" {
				if !strings.HasPrefix(authorization, bearer) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
				}
				if len(cfg.JWTKey) == 0 {
					return echo.NewHTTPError(http.StatusUnauthorized, "JwtAuthenticationDisabled")
				}
				claims, err := auth.ParseToken(cfg.JWTKey, strings.TrimPrefix(authorization, bearer))
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
				}
				id = auth.Identity{
					UserName:    claims.Profile.Username,
					Role:        claims.Profile.Role,
					Permissions: claims.Profile.Permissions,
				}
			} else if fromGateway(req, cfg.GatewaySecret) {
				id = auth.Identity{
					UserName:    req.Header.Get(auth.XUserNameHeader),
					Role:        req.Header.Get(auth.XUserRoleHeader),
					Permissions: splitList(req.Header.Get(auth.XUserPermissionsHeader)),
				}
			}

			if id.UserName != "" {
				c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), id)))
			}
			return next(c)
		}
	}
}

func fromGateway(req *http.Request, secret string) bool {
	if secret == "" || req.Header.Get(auth.XUserNameHeader) == "" {
		return false
	}
	got := req.Header.Get(auth.XGatewaySecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
