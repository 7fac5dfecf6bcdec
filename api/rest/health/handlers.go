package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health check response
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// returns the dev analysis service health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "critique-devserver",
		Version: "1.0.0",
	})
}
