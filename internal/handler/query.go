package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advocacia-backend/internal/model"
	"advocacia-backend/internal/service"
	"advocacia-backend/pkg/logger"
)

type QueryHandler struct {
	queryService *service.QueryService
}

func NewQueryHandler(queryService *service.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

func (h *QueryHandler) Generate(c *gin.Context) {
	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	text, err := h.queryService.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		logger.Errorf("Complex query failed: %v", err)
		c.JSON(statusFor(err), model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.QueryResponse{Text: text})
}
