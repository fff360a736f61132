package routes

import (
	"net/http"

	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type pingResponse struct {
	Message string `json:"message"`
	Online  bool   `json:"online"`
}

func addPingRoutes(rg *gin.RouterGroup, conn interfaces.IConnectivity) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, pingResponse{Message: "pong", Online: conn == nil || conn.IsOnline()})
	})
}
