package routes

import (
	"github.com/gin-gonic/gin"
)

func WebSocketRoutes(r *gin.Engine, ctrl Controllers) {
	ws := r.Group("/ws")
	{
		ws.GET("/live", ctrl.Live.HandleLiveWebSocket)
	}
}
