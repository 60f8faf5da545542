package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemController serves the root, hello and store-diagnostic endpoints.
type SystemController struct {
	db             *mongo.Database // nil when no store is configured
	urlConfigured  bool
	nameConfigured bool
}

// NewSystemController creates a new SystemController. db may be nil.
func NewSystemController(db *mongo.Database, urlConfigured, nameConfigured bool) *SystemController {
	return &SystemController{db: db, urlConfigured: urlConfigured, nameConfigured: nameConfigured}
}

// Root handles GET /.
func (sc *SystemController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Aronia Pure Backend is running"})
}

// Hello handles GET /api/hello.
func (sc *SystemController) Hello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase handles GET /test. It reports store reachability without ever
// failing the request, so it is safe to probe on an unconfigured deployment.
func (sc *SystemController) TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      configuredLabel(sc.urlConfigured),
		"database_name":     configuredLabel(sc.nameConfigured),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if sc.db != nil {
		response["database"] = "available"
		response["connection_status"] = "connected"

		probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		names, err := sc.db.ListCollectionNames(probeCtx, bson.M{})
		if err != nil {
			response["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["database"] = "connected and working"
			response["collections"] = names
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (sc *SystemController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func configuredLabel(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
