package handler

import (
	"net/http"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.librarySvc.Dashboard(c.Request().Context(), sessionKey(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListBooks(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id, sessionKey(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), actor(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	authors, err := h.librarySvc.ListAuthors(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	author, err := h.librarySvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), actor(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), actor(c), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteAuthor(c.Request().Context(), actor(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListGenres(c echo.Context) error {
	genres, err := h.librarySvc.ListGenres(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) ListLanguages(c echo.Context) error {
	languages, err := h.librarySvc.ListLanguages(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, languages)
}

func (h *Handler) CreateLanguage(c echo.Context) error {
	var req model.LanguageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	lang, err := h.librarySvc.CreateLanguage(c.Request().Context(), actor(c), req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, lang)
}
