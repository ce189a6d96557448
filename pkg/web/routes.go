// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/status", statusHandler)
		api.GET("/bot", botInfoHandler)
	}
}

// healthHandler returns a simple liveness response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyGuard Go is running",
	})
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	uptime := ""
	if client != nil {
		botOnline = client.IsReady()
		uptime = time.Since(client.StartTime).Round(time.Second).String()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
			"uptime":   uptime,
		},
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}
