package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires every route onto a gin engine. templatesGlob may be empty,
// in which case the /web pages are not registered (handy in tests that only
// exercise the JSON surface).
func NewRouter(h *Handler, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.Log), gin.Recovery())

	r.GET("/", h.Root)
	r.GET("/healthz", h.Health)
	r.GET("/students", h.Students)
	r.GET("/students/:id", h.StudentByID)
	r.GET("/news", h.News)
	r.GET("/news/:id", h.NewsByID)
	r.GET("/freelancers", h.Freelancers)

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
		web := r.Group("/web")
		web.GET("", h.WebIndex)
		web.GET("/students", h.WebStudents)
		web.GET("/students/:id", h.WebStudentByID)
		web.GET("/news", h.WebNews)
		web.GET("/news/:id", h.WebNewsByID)
		web.GET("/freelancers", h.WebFreelancers)
	}

	return r
}

func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
