package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/rest/request"
)

type displayHandler struct {
	Service domain.DisplayUsecase
}

func NewDisplayHandler(svc domain.DisplayUsecase) *displayHandler {
	return &displayHandler{
		Service: svc,
	}
}

func (h *displayHandler) GetDisplayMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": h.Service.GetDisplayMode(c.Request.Context())})
}

func (h *displayHandler) SetDisplayMode(c *gin.Context) {
	var req request.DisplayMode
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	mode := req.ToDomain()
	if err := h.Service.SetDisplayMode(c.Request.Context(), mode); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}
