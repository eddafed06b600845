package handler

import (
	"net/http"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) RegisterProfile(c echo.Context) error {
	var req model.ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.librarySvc.RegisterProfile(c.Request().Context(), actor(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetProfile(c echo.Context) error {
	p, err := h.librarySvc.GetProfile(c.Request().Context(), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req model.ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.librarySvc.UpdateProfile(c.Request().Context(), actor(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ToggleLike(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	res, err := h.librarySvc.ToggleLike(c.Request().Context(), actor(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.LikeResponse{BookID: id, Result: res})
}

func (h *Handler) ListLikedBooks(c echo.Context) error {
	books, err := h.librarySvc.ListLikedBooks(c.Request().Context(), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}
