package http

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/yardstick"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

// ShutdownTimeout bounds graceful shutdown in Close.
const ShutdownTimeout = 5 * time.Second

//go:embed static
var staticFS embed.FS

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server serves the scrape and amend JSON API and the browser front-end.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Addr is the bind address, e.g. "0.0.0.0:5000".
	Addr string

	scraper yardstick.Scraper
	amender yardstick.Amender
	logger  *slog.Logger
}

// NewServer creates a Server and registers its routes.
func NewServer(scraper yardstick.Scraper, amender yardstick.Amender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:  gin.New(),
		scraper: scraper,
		amender: amender,
		logger:  logger,
	}
	s.server = &http.Server{Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())
	s.router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{RequestIDHeader},
	}))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		panic(err)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	s.router.StaticFS("/static", http.FS(static))
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := s.router.Group("/api")
	api.POST("/scrape", s.handleScrape)
	api.POST("/amend", s.handleAmend)

	return s
}

// Handler returns the root handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds Addr. Call Serve to start accepting connections.
func (s *Server) Listen() (err error) {
	s.ln, err = net.Listen("tcp", s.Addr)
	return err
}

// Serve accepts connections on the bound listener until Close is called.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server is not listening")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server, waiting up to ShutdownTimeout
// for in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// amendRequest is the body of POST /api/amend.
type amendRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleScrape(c *gin.Context) {
	var req yardstick.ScrapeRequest
	bindJSON(c, &req)

	article, err := s.scraper.Scrape(c.Request.Context(), req)
	if err != nil {
		// Every scrape failure is reported as a bad request.
		c.JSON(http.StatusBadRequest, gin.H{"error": yardstick.ErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) handleAmend(c *gin.Context) {
	var req amendRequest
	bindJSON(c, &req)

	amended, err := s.amender.Amend(c.Request.Context(), req.Text)
	if err != nil {
		errorType := yardstick.AmendErrorTypeOf(err)
		c.JSON(AmendErrorStatus(errorType), gin.H{
			"error":      yardstick.ErrorMessage(err),
			"error_type": errorType,
		})
		return
	}
	c.JSON(http.StatusOK, yardstick.Amendment{AmendedText: amended, Success: true})
}

// bindJSON decodes the request body into v. A missing or malformed body
// leaves v at its zero value.
func bindJSON[T any](c *gin.Context, v *T) {
	if err := c.ShouldBindJSON(v); err != nil {
		var zero T
		*v = zero
	}
}

// amendErrorStatus maps amend error types to HTTP status codes.
var amendErrorStatus = map[yardstick.AmendErrorType]int{
	yardstick.AmendErrorConfiguration:  http.StatusInternalServerError,
	yardstick.AmendErrorInvalidRequest: http.StatusBadRequest,
	yardstick.AmendErrorQuota:          http.StatusTooManyRequests,
	yardstick.AmendErrorInvalidKey:     http.StatusUnauthorized,
	yardstick.AmendErrorGeneral:        http.StatusInternalServerError,
}

// AmendErrorStatus returns the HTTP status code for an amend error type.
func AmendErrorStatus(t yardstick.AmendErrorType) int {
	if code, ok := amendErrorStatus[t]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// requestLogger assigns each request an ID and logs one line when it
// completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		c.Next()

		s.logger.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}
