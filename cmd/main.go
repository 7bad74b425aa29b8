package main

import (
	"os"

	"github.com/arjitrawat15/Stavia/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           Stavia API
// @version         1.0
// @description     Hotel catalog and room booking service

// @BasePath  /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
