package api

import (
	"net/http"
	"strconv"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/sender"

	"github.com/gin-gonic/gin"
)

type SendHandler struct {
	Orchestrator *sender.Orchestrator
}

func NewSendHandler(o *sender.Orchestrator) *SendHandler {
	return &SendHandler{Orchestrator: o}
}

func (h *SendHandler) bind(c *gin.Context) (sender.Request, bool) {
	var req sender.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	req.UserID = currentUser(c)
	return req, true
}

// Preview composes the messages without sending them
func (h *SendHandler) Preview(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	previews, err := h.Orchestrator.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, previews)
}

// SendBackground hands the whole batch to the background sending service
func (h *SendHandler) SendBackground(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.Orchestrator.SubmitBackground(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, result)
}

func (h *SendHandler) GetProcesses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	processes, err := h.Orchestrator.Processes.ListForUser(c.Request.Context(), currentUser(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, processes)
}

func (h *SendHandler) GetProcessStatus(c *gin.Context) {
	status, err := h.Orchestrator.ProcessStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SendDirect starts the sequential sending loop
func (h *SendHandler) SendDirect(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	run, err := h.Orchestrator.StartDirect(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, run.Snapshot())
}

func (h *SendHandler) StopDirect(c *gin.Context) {
	if !h.Orchestrator.Stop(currentUser(c), c.Param("runId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stop requested"})
}
