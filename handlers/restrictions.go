package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/racecond/restrictions"
)

type textRequest struct {
	Text *string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type normalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

// ParseRestrictions interprets one race conditions text. The response is
// always a restriction record; text that cannot be interpreted yields the
// open record (unknown ages, all sexes).
func (h *Handler) ParseRestrictions(c echo.Context) error {
	text, err := h.bindText(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restrictions.Parse(text))
}

// ParseRestrictionsBatch interprets many texts, returning records in input order.
func (h *Handler) ParseRestrictionsBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Texts) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "texts is required")
	}
	if len(req.Texts) > h.cfg.MaxBatch {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("at most %d texts per batch, got %d", h.cfg.MaxBatch, len(req.Texts)))
	}

	out := make([]restrictions.Restrictions, len(req.Texts))
	for i, text := range req.Texts {
		if len(text) > h.cfg.MaxTextBytes {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("texts[%d] exceeds %d bytes", i, h.cfg.MaxTextBytes))
		}
		out[i] = restrictions.Parse(text)
	}

	zap.L().Debug("parsed batch", zap.Int("texts", len(out)))
	return c.JSON(http.StatusOK, out)
}

// Normalize returns the canonical form the grammars match against.
func (h *Handler) Normalize(c echo.Context) error {
	text, err := h.bindText(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, normalizeResponse{Text: text, Normalized: restrictions.Normalize(text)})
}

func (h *Handler) bindText(c echo.Context) (string, error) {
	var req textRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	if len(*req.Text) > h.cfg.MaxTextBytes {
		return "", echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("text exceeds %d bytes", h.cfg.MaxTextBytes))
	}
	return *req.Text, nil
}
