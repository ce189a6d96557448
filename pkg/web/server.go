// Package web provides a small HTTP server for health and status probes.
// It uses the Gin framework.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Server represents the web server
type Server struct {
	engine     *gin.Engine
	webhookURL string
}

var server *Server

// Init initializes the global web server
func Init(webhookURL string) *Server {
	server = NewServer(webhookURL)
	return server
}

// Get returns the global web server
func Get() *Server {
	return server
}

// NewServer creates a new web server
func NewServer(webhookURL string) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:     engine,
		webhookURL: webhookURL,
	}

	s.engine.Use(s.logsMiddleware())
	s.engine.Use(s.rateLimitMiddleware())
	s.setupErrorHandlers()

	return s
}

// Engine returns the underlying Gin engine
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// logsMiddleware logs incoming requests and mirrors them to the logs webhook
func (s *Server) logsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info(fmt.Sprintf("[LOG] New request: %s %s", c.Request.Method, c.Request.URL.Path), "WebServer")
		go s.sendLogToWebhook(c)
		c.Next()
	}
}

// sendLogToWebhook mirrors one request to the Discord logs webhook
func (s *Server) sendLogToWebhook(c *gin.Context) {
	if s.webhookURL == "" {
		return
	}

	query := c.Request.URL.RawQuery
	if query == "" {
		query = "{}"
	}

	embed := map[string]interface{}{
		"title": fmt.Sprintf("💫 | New %s request to the web server", c.Request.Method),
		"description": fmt.Sprintf(
			"> **Path:** `%s`\n> **IP:** `%s`\n> **Query:** ```%s```",
			c.Request.URL.Path,
			c.ClientIP(),
			query,
		),
		"color":     0x00AE86,
		"timestamp": time.Now().Format(time.RFC3339),
	}

	payload := map[string]interface{}{
		"embeds": []interface{}{embed},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return
	}

	req, err := http.NewRequest("POST", s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	WindowMs    time.Duration
	MaxRequests int
}

// rateLimitMiddleware implements a simple per-IP rate limiter
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	type clientInfo struct {
		count   int
		resetAt time.Time
	}
	var mu sync.RWMutex
	clients := make(map[string]*clientInfo)

	config := RateLimitConfig{
		WindowMs:    60 * time.Second,
		MaxRequests: 100,
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.RLock()
		info, exists := clients[ip]
		mu.RUnlock()

		if !exists || now.After(info.resetAt) {
			mu.Lock()
			clients[ip] = &clientInfo{
				count:   1,
				resetAt: now.Add(config.WindowMs),
			}
			mu.Unlock()
			c.Next()
			return
		}

		mu.Lock()
		info.count++
		count := info.count
		mu.Unlock()

		if count > config.MaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// setupErrorHandlers sets up error handling routes
func (s *Server) setupErrorHandlers() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "The requested route does not exist.",
			"status":  404,
		})
	})

	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":   "Method Not Allowed",
			"message": "The HTTP method is not allowed for this route.",
			"status":  405,
		})
	})
}

// Start starts the web server
func (s *Server) Start(port string) error {
	logger.Info(fmt.Sprintf("🚀 Server listening on http://localhost:%s", port), "WebServer")
	return s.engine.Run(":" + port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync(port string) {
	go func() {
		if err := s.Start(port); err != nil {
			logger.Error(fmt.Sprintf("Error starting web server: %v", err), "WebServer")
		}
	}()
}

// GET registers a GET route
func (s *Server) GET(path string, handlers ...gin.HandlerFunc) {
	s.engine.GET(path, handlers...)
}

// Group creates a new router group
func (s *Server) Group(path string, handlers ...gin.HandlerFunc) *gin.RouterGroup {
	return s.engine.Group(path, handlers...)
}
