package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/padraicbc/racecond/config"
	"github.com/padraicbc/racecond/db"
	"github.com/padraicbc/racecond/models"
)

// UserStore looks up API users for sign-in and admin checks.
type UserStore interface {
	FindUser(ctx context.Context, username string) (*models.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	users UserStore
	cfg   *config.Config
}

// New creates a Handler backed by the given database connection.
func New(bdb *bun.DB, cfg *config.Config) *Handler {
	return NewWithStore(bunUsers{db: bdb}, cfg)
}

// NewWithStore creates a Handler with an explicit user store.
func NewWithStore(users UserStore, cfg *config.Config) *Handler {
	return &Handler{users: users, cfg: cfg}
}

// Healthz reports that the process is serving requests.
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type bunUsers struct {
	db *bun.DB
}

func (u bunUsers) FindUser(ctx context.Context, username string) (*models.User, error) {
	return db.FindUser(ctx, u.db, username)
}

func (u bunUsers) UserExists(ctx context.Context, username string) (bool, error) {
	return db.UserExists(ctx, u.db, username)
}
