package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/farmchat/domain"
	"github.com/xiaot623/farmchat/service"
)

// Ask handles one conversational exchange.
// POST /ask
//
// Only client-input problems produce error statuses; downstream failures
// (weather API, model server) come back as 200 with a degraded answer.
func (h *Handler) Ask(c echo.Context) error {
	var req domain.AskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Request must be JSON"})
	}

	resp, err := h.svc.Ask(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Prompt is required"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}
