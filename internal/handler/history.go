package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advocacia-backend/internal/model"
	"advocacia-backend/internal/storage"
	"advocacia-backend/pkg/logger"
)

// HistoryHandler exposes the three saved-history stores. Storage failures
// are logged and surfaced as a save status; they never crash a panel.
type HistoryHandler struct {
	store storage.Store
}

func NewHistoryHandler(store storage.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) AddPetition(c *gin.Context) {
	var req model.SavePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.store.AddPetition(req.Title, req.Content)
	if err != nil {
		logger.Errorf("Failed to save petition: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *HistoryHandler) ListPetitions(c *gin.Context) {
	records, err := h.store.GetAllPetitions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *HistoryHandler) UpdatePetition(c *gin.Context) {
	var req model.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.UpdatePetition(c.Param("id"), req.Title, req.Content); err != nil {
		logger.Errorf("Failed to update petition: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) DeletePetition(c *gin.Context) {
	if err := h.store.DeletePetition(c.Param("id")); err != nil {
		logger.Errorf("Failed to delete petition: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) AddPost(c *gin.Context) {
	var req model.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.store.AddPost(req.Post)
	if err != nil {
		logger.Errorf("Failed to save post: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *HistoryHandler) ListPosts(c *gin.Context) {
	records, err := h.store.GetAllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *HistoryHandler) UpdatePost(c *gin.Context) {
	var req model.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.UpdatePost(c.Param("id"), &req.Post); err != nil {
		logger.Errorf("Failed to update post: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) DeletePost(c *gin.Context) {
	if err := h.store.DeletePost(c.Param("id")); err != nil {
		logger.Errorf("Failed to delete post: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) AddQuery(c *gin.Context) {
	var req model.SaveQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.store.AddQuery(req.Title, req.Content)
	if err != nil {
		logger.Errorf("Failed to save query: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *HistoryHandler) ListQueries(c *gin.Context) {
	records, err := h.store.GetAllQueries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *HistoryHandler) UpdateQuery(c *gin.Context) {
	var req model.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.UpdateQuery(c.Param("id"), req.Title, req.Content); err != nil {
		logger.Errorf("Failed to update query: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) DeleteQuery(c *gin.Context) {
	if err := h.store.DeleteQuery(c.Param("id")); err != nil {
		logger.Errorf("Failed to delete query: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
