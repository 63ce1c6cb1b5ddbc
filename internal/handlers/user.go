package handlers

import (
	"net/http"

	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/middleware"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me godoc
// @Summary Current user profile
// @Description Return the profile of the authenticated caller
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} map[string]string
// @Router /user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)

	response, err := h.userService.GetCurrentUser(c.Request.Context(), identity)
	if err != nil {
		// Every failure collapses to one generic body; the caller learns
		// nothing about why the lookup failed.
		respondError(c, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	c.JSON(http.StatusOK, response)
}
