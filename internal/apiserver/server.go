package apiserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// collections lists the entity collections the server exposes. Anything
// else is a 404.
var collections = map[string]bool{
	"project": true,
	"task":    true,
	"team":    true,
	"member":  true,
}

// basePath is the REST prefix the TUI client is pointed at.
const basePath = "/api/v1/projectflow"

// Server serves the collection REST surface over a Store.
type Server struct {
	store *Store
	token string
}

// NewServer creates a server over the given store. A non-empty token
// makes every request require it as a bearer credential.
func NewServer(store *Store, token string) *Server {
	return &Server{store: store, token: token}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group(basePath)
	if s.token != "" {
		api.Use(s.requireToken)
	}

	api.GET("/:collection", s.list)
	api.POST("/:collection", s.create)
	api.GET("/:collection/:id", s.get)
	api.PUT("/:collection/:id", s.update)
	api.DELETE("/:collection/:id", s.remove)

	return r
}

// requireToken rejects requests without the configured bearer token.
func (s *Server) requireToken(ctx *gin.Context) {
	auth := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.token {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}
	ctx.Next()
}

// collectionOf validates the collection path segment.
func collectionOf(ctx *gin.Context) (string, bool) {
	name := ctx.Param("collection")
	if !collections[name] {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown collection: " + name})
		return "", false
	}
	return name, true
}

func (s *Server) list(ctx *gin.Context) {
	collection, ok := collectionOf(ctx)
	if !ok {
		return
	}

	docs, err := s.store.List(collection)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, docs)
}

func (s *Server) get(ctx *gin.Context) {
	collection, ok := collectionOf(ctx)
	if !ok {
		return
	}

	doc, found, err := s.store.Get(collection, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

func (s *Server) create(ctx *gin.Context) {
	collection, ok := collectionOf(ctx)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := s.store.Create(collection, body)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, doc)
}

func (s *Server) update(ctx *gin.Context) {
	collection, ok := collectionOf(ctx)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, found, err := s.store.Update(collection, ctx.Param("id"), patch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ctx.JSON(http.StatusOK, doc)
}

func (s *Server) remove(ctx *gin.Context) {
	collection, ok := collectionOf(ctx)
	if !ok {
		return
	}

	found, err := s.store.Delete(collection, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
