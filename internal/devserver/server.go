// Package devserver is a self-contained stand-in for the remote
// scoring backend. It implements the same HTTP surface and response
// envelope the client consumes, backed by an in-memory store and a
// deterministic pseudo-scorer, so the full login/profile/assessment
// loop can run locally and in tests. It is not a product backend.
package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kriju0726/HealiFy/internal/ports"
)

type Server struct {
	secret []byte
	clock  ports.Clock
	store  *memoryStore
	engine *gin.Engine
}

func New(secret string, clock ports.Clock) *Server {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		secret: []byte(secret),
		clock:  clock,
		store:  newMemoryStore(),
		engine: engine,
	}

	engine.POST("/auth/register", s.handleRegister)
	engine.POST("/auth/login", s.handleLogin)

	authed := engine.Group("/", s.requireAuth)
	authed.GET("/profile", s.handleGetProfile)
	authed.PUT("/profile", s.handleUpdateProfile)
	authed.POST("/predict/:type", s.handlePredict)
	authed.GET("/predictions/history", s.handleHistory)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func respond(c *gin.Context, status int, success bool, message string, data any) {
	c.JSON(status, gin.H{
		"success":    success,
		"statusCode": status,
		"message":    message,
		"data":       data,
	})
}
