package handler

import (
	"net/http"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) AddInstance(c echo.Context) error {
	bookID, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.InstanceRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	bi, err := h.librarySvc.AddInstance(c.Request().Context(), actor(c), bookID, req.Imprint)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bi)
}

func (h *Handler) ListMyLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListLoansForUser(c.Request().Context(), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListAllLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListAllLoans(c.Request().Context(), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	loans, err := h.librarySvc.ListOverdue(c.Request().Context(), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) Checkout(c echo.Context) error {
	id, err := paramUUID(c)
	if err != nil {
		return err
	}
	var req model.CheckoutRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	bi, err := h.librarySvc.Checkout(c.Request().Context(), actor(c), id, req.Borrower, req.DueBack)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bi)
}

func (h *Handler) MarkReturned(c echo.Context) error {
	id, err := paramUUID(c)
	if err != nil {
		return err
	}
	bi, err := h.librarySvc.MarkReturned(c.Request().Context(), actor(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bi)
}

// RenewalProposal prefills the renewal form.
func (h *Handler) RenewalProposal(c echo.Context) error {
	id, err := paramUUID(c)
	if err != nil {
		return err
	}
	p, err := h.librarySvc.RenewalProposal(c.Request().Context(), actor(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Renew(c echo.Context) error {
	id, err := paramUUID(c)
	if err != nil {
		return err
	}
	var req model.RenewRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	bi, err := h.librarySvc.Renew(c.Request().Context(), actor(c), id, req.DueBack)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bi)
}
