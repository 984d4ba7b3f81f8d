package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler serves the role-gated demonstration routes. The actual
// gating happens in the Authorize middleware; these handlers only read the
// identity it injected.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

// Root greets unauthenticated visitors.
func (h *ProtectedHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "welcome to the RBAC authentication service"})
}

// Protected is reachable with any valid token.
//
// @Summary      Protected resource
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/protected [get]
func (h *ProtectedHandler) Protected(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "this resource requires a valid token"})
}

// Admin is reachable by the Admin role only.
//
// @Summary      Admin resource
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin [get]
func (h *ProtectedHandler) Admin(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "welcome, Admin!"})
}

// User is reachable by the User and Admin roles.
//
// @Summary      User resource
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/user [get]
func (h *ProtectedHandler) User(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "welcome, " + role + "!"})
}
