package dashboard

import (
	"net/http"

	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/apperror"
	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) AdminStats(c *gin.Context) {
	resp, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
