package api

import (
	"net/http"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/repository"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id", h.get)
}

func (h *UserHandler) get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
