package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// importSlack covers upload and response write around the import itself.
const importSlack = 30 * time.Second

// Import takes a multipart upload in field "file".
func (h *Handler) Import(c echo.Context) error {
	h.extendDeadlines(c)

	fh, err := c.FormFile("file")
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	res, err := h.librarySvc.Import(c.Request().Context(), actor(c), fh.Filename, f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

// extendDeadlines lifts the server-wide read and write timeouts for this
// request so a long import still gets its response.
func (h *Handler) extendDeadlines(c echo.Context) {
	if h.cfg.ImportTimeout <= 0 {
		return
	}
	deadline := time.Now().Add(h.cfg.ImportTimeout + importSlack)
	rc := http.NewResponseController(c.Response().Writer)
	if err := rc.SetReadDeadline(deadline); err != nil {
		h.log.Debug("SetReadDeadline", zap.Error(err))
	}
	if err := rc.SetWriteDeadline(deadline); err != nil {
		h.log.Debug("SetWriteDeadline", zap.Error(err))
	}
}
