package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/farmchat/domain"
)

// GetSessionMessages returns the persisted turns for a session.
// GET /v1/sessions/:session_id/messages
//
// Unknown sessions yield an empty list, not an error; sessions exist from
// their first reference.
func (h *Handler) GetSessionMessages(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	turns, err := h.svc.History(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: failed to get messages: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get messages"})
	}
	if turns == nil {
		turns = []domain.Turn{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": turns,
	})
}
