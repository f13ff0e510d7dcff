package api

import (
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/ws"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Areas     *AreaHandler
	Templates *TemplateHandler
	Customers *CustomerHandler
	ETAs      *ETAHandler
	Send      *SendHandler
	Hub       *ws.Hub
}

// CORS allows the mobile and web clients to call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	if h.Hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			h.Hub.ServeWs(c.Writer, c.Request)
		})
	}

	apiGroup := r.Group("/api", RequireUser())
	{
		apiGroup.GET("/areas", h.Areas.GetAreas)
		apiGroup.POST("/areas", h.Areas.CreateArea)
		apiGroup.GET("/areas/:id", h.Areas.GetArea)
		apiGroup.PUT("/areas/:id", h.Areas.UpdateArea)
		apiGroup.DELETE("/areas/:id", h.Areas.DeleteArea)

		apiGroup.GET("/templates", h.Templates.GetTemplates)
		apiGroup.POST("/templates", h.Templates.CreateTemplate)
		apiGroup.GET("/templates/:id", h.Templates.GetTemplate)
		apiGroup.PUT("/templates/:id", h.Templates.UpdateTemplate)
		apiGroup.DELETE("/templates/:id", h.Templates.DeleteTemplate)
		apiGroup.POST("/templates/:id/default", h.Templates.SetDefault)
		apiGroup.POST("/templates/:id/favorite", h.Templates.ToggleFavorite)

		apiGroup.GET("/customers", h.Customers.GetCustomers)
		apiGroup.POST("/customers", h.Customers.CreateCustomer)
		apiGroup.PUT("/customers/:id", h.Customers.UpdateCustomer)
		apiGroup.DELETE("/customers/:id", h.Customers.DeleteCustomer)

		apiGroup.GET("/etas", h.ETAs.GetETAs)
		apiGroup.GET("/etas/:areaId", h.ETAs.GetETA)
		apiGroup.PUT("/etas/:areaId", h.ETAs.SetETA)
		apiGroup.DELETE("/etas/:areaId", h.ETAs.DeleteETA)
		apiGroup.POST("/etas/shift", h.ETAs.ShiftETAs)

		sendGroup := apiGroup.Group("/send")
		{
			sendGroup.POST("/preview", h.Send.Preview)
			sendGroup.POST("/background", h.Send.SendBackground)
			sendGroup.GET("/processes", h.Send.GetProcesses)
			sendGroup.GET("/processes/:id", h.Send.GetProcessStatus)
			sendGroup.POST("/direct", h.Send.SendDirect)
			sendGroup.POST("/direct/:runId/stop", h.Send.StopDirect)
		}
	}
}
