// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "trackapp/internal/feature/auth/transport/handler"
	trackhandler "trackapp/internal/feature/tracks/transport/handler"
	"trackapp/internal/platform/http/handler"
	jwtmw "trackapp/internal/platform/jwt"
)

// NewRouter wires the handlers into a Gin engine. The signing secret and the
// user resolver for the auth gate are injected here rather than resolved
// globally.
func NewRouter(auth *authhandler.AuthHandler, tracks *trackhandler.TrackHandler,
	jwtSecret string, users jwtmw.UserResolver) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/signin", auth.Signin)

	// Authenticated routes: every request must carry a bearer token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(jwtSecret, users))
	{
		protected.GET("/", auth.Whoami)
		protected.GET("/tracks", tracks.List)
		protected.POST("/tracks", tracks.Create)
	}

	return r
}
