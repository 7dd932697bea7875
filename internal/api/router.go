package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"TickerPane/internal/api/handler"
	"TickerPane/internal/api/middleware"
)

// NewRouter registers every route on a fresh engine.
func NewRouter(hd handler.HandlerItf, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Error())
	r.Use(middleware.Timeout(timeout))

	r.GET("/healthz", hd.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/view", hd.GetView)
		v1.GET("/quote", hd.GetQuote)
		v1.GET("/spark.svg", hd.GetSpark)
		v1.GET("/suggest", hd.GetSuggest)

		v1.GET("/favorites", hd.GetFavorites)
		v1.POST("/favorites", hd.PostFavorite)
		v1.DELETE("/favorites/:ticker", hd.DeleteFavorite)

		v1.GET("/key", hd.GetKey)
		v1.PUT("/key", hd.PutKey)
		v1.DELETE("/key", hd.DeleteKey)
	}
	return r
}
