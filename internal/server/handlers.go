package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandlens/internal/config"
	"brandlens/internal/dashboard"
	"brandlens/internal/insight"
	"brandlens/internal/llm"
	"brandlens/internal/logging"
)

// Handlers binds the chat orchestrator and dashboard service to the HTTP
// surface.
type Handlers struct {
	orchestrator *insight.Orchestrator
	dashboards   *dashboard.Service
	cfg          *config.Config
	logger       logging.Logger
}

// NewHandlers wires the request handlers to their services.
func NewHandlers(orchestrator *insight.Orchestrator, dashboards *dashboard.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		dashboards:   dashboards,
		cfg:          cfg,
		logger:       logging.NewComponentLogger("http"),
	}
}

// Chat runs one chat turn. A turn whose backend subsystem was unreachable
// still answers 200 with the fixed apology reply; only an unreadable request
// body is an HTTP error.
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process chat request",
			"details": err.Error(),
		})
		return
	}

	reply, topic, err := h.orchestrator.Respond(
		c.Request.Context(),
		req.Message,
		req.Context.Context,
		req.Context.PreviousMessages,
		req.Context.CompareSuggestions,
	)
	if err != nil {
		h.logger.Error("chat turn degraded: %v", err)
		c.JSON(http.StatusOK, ChatResponse{
			AIResponse: insight.DegradedReply(),
			Topic:      insight.ErrorTopic,
		})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{AIResponse: reply, Topic: topic})
}

// DashboardContext advances the clarification dialogue by one turn.
func (h *Handlers) DashboardContext(c *gin.Context) {
	var req DashboardContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "Failed to process dashboard context request",
			"details":           err.Error(),
			"message":           "I'm sorry, there was an error processing your request. Please try again.",
			"isContextComplete": false,
		})
		return
	}

	message, complete, err := h.dashboards.NextQuestion(
		c.Request.Context(),
		req.UserPrompt,
		req.Context.WithDefaults(),
		req.PreviousMessages,
	)
	if err != nil {
		h.logger.Error("dashboard clarification degraded: %v", err)
	}

	c.JSON(http.StatusOK, DashboardContextResponse{
		Message:           message,
		IsContextComplete: complete,
	})
}

// DashboardGenerate turns a completed clarification transcript into a
// dashboard.
func (h *Handlers) DashboardGenerate(c *gin.Context) {
	var req DashboardGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          "Failed to generate dashboard",
			"details":        err.Error(),
			"insights":       "An error occurred while generating your dashboard.",
			"visualizations": []dashboard.Visualization{},
		})
		return
	}

	d, err := h.dashboards.Generate(
		c.Request.Context(),
		req.UserPrompt,
		req.Context.WithDefaults(),
		req.ContextMessages,
	)
	if err != nil {
		h.logger.Error("dashboard generation degraded: %v", err)
	}

	c.JSON(http.StatusOK, d)
}

// Config reports backend availability. The Ollama endpoint is probed live on
// every call.
func (h *Handlers) Config(c *gin.Context) {
	ollamaAvailable := llm.PingOllama(c.Request.Context(), h.cfg.Ollama.Endpoint)

	c.JSON(http.StatusOK, ConfigResponse{
		Status: "ok",
		Config: ConfigStatus{
			HasOpenAI:       h.cfg.HasOpenAI(),
			OllamaAvailable: ollamaAvailable,
			OllamaEndpoint:  h.cfg.Ollama.Endpoint,
			Environment:     h.cfg.App.Environment,
		},
	})
}
