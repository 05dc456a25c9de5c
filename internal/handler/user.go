package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/config"
	"github.com/iliyamo/marina-berth-reservation/internal/repository"
)

// UserHandler bundles dependencies for the user account endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type createUserReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPart is the public projection of a user; the password hash never
// leaves the repository layer.
type userPart struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Create handles POST /users.  Signup is public so the first account can
// be provisioned without an existing token.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username, email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "username already exists"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "could not create user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "user created",
		"user":    userPart{Username: req.Username, Email: req.Email},
	})
}

// List handles GET /users and returns the public projection of every
// account.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not list users"})
	}
	out := make([]userPart, 0, len(users))
	for _, u := range users {
		out = append(out, userPart{Username: u.Username, Email: u.Email})
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:username.
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not load user"})
	}
	return c.JSON(http.StatusOK, userPart{Username: u.Username, Email: u.Email})
}

// Delete handles DELETE /users/:username and echoes the removed account.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.DeleteByUsername(ctx, c.Param("username"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "user deleted",
		"deletedUser": userPart{Username: u.Username, Email: u.Email},
	})
}
