// Package api serves routes and municipality lookups over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/singleflight"

	"github.com/Excalibur888/PotooMaps/bfs"
	"github.com/Excalibur888/PotooMaps/config"
	"github.com/Excalibur888/PotooMaps/dijkstra"
	"github.com/Excalibur888/PotooMaps/export"
	"github.com/Excalibur888/PotooMaps/municipality"
	"github.com/Excalibur888/PotooMaps/poi"
)

// Server represents the HTTP server. The atlas and POI index are fully
// loaded before New and never written afterwards, so handlers read them
// concurrently without locking.
type Server struct {
	atlas  *municipality.Atlas
	pois   *poi.Index
	radius float64
	points bool
	// components is the number of weakly connected components, fixed at New.
	components int
	// routes collapses concurrent identical route queries into one search.
	routes singleflight.Group

	logger   *slog.Logger
	router   *gin.Engine
	server   *http.Server
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New creates a server over a loaded atlas. pois may be nil, in which case
// routes carry no POI statistics.
func New(cfg *config.Config, atlas *municipality.Atlas, pois *poi.Index, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		atlas:    atlas,
		pois:     pois,
		radius:   cfg.POI.RadiusDeg,
		points:   cfg.Output.Points,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "potoo_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "potoo_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}, []string{"route"}),
	}
	s.registry.MustRegister(s.requests, s.latency)
	// Components makes one pass over every out-edge plus reverse lists of
	// O(V + E) memory; on a national graph this is a noticeable part of startup.
	if g := atlas.Graph(); g != nil {
		if comps, err := bfs.Components(g); err == nil {
			s.components = len(comps)
		}
	}

	gin.SetMode(cfg.Server.Mode)
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(requestID())
	s.router.Use(s.observe())
	s.setupRoutes()

	s.server = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the registry behind /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.router.Group("/v1")
	{
		v1.GET("/municipalities/:key", s.municipality)
		v1.GET("/route", s.route)
	}
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server stopping")
	return s.server.Shutdown(ctx)
}

// RequestIDHeader carries the request id, echoed or generated.
const RequestIDHeader = "X-Request-ID"

// requestID makes sure every request has an id, for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// observe records the request counter and latency histogram and logs
// each request at debug level.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		code := strconv.Itoa(c.Writer.Status())
		s.requests.WithLabelValues(route, c.Request.Method, code).Inc()
		s.latency.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("http request",
			slog.String("request_id", c.GetString(RequestIDHeader)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("code", code),
			slog.Duration("elapsed", elapsed))
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, errorBody{Error: err.Error()})
}

func (s *Server) health(c *gin.Context) {
	edges := 0
	if g := s.atlas.Graph(); g != nil {
		edges = g.EdgeCount()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"municipalities": s.atlas.Len(),
		"edges":          edges,
		"components":     s.components,
	})
}

// municipalityBody describes one municipality and its neighbours.
type municipalityBody struct {
	ID         int      `json:"id"`
	INSEE      string   `json:"insee"`
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Neighbours []string `json:"neighbours"`
}

func (s *Server) municipality(c *gin.Context) {
	m, err := s.atlas.Lookup(c.Param("key"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	body := municipalityBody{ID: m.ID, INSEE: m.INSEE, Name: m.Name, Lat: m.Lat, Lon: m.Lon, Neighbours: []string{}}
	if nb, err := s.atlas.Neighbours(m); err == nil {
		for _, n := range nb {
			body.Neighbours = append(body.Neighbours, n.INSEE)
		}
	}
	c.JSON(http.StatusOK, body)
}

// route answers GET /v1/route?from=..&to=.. with a GeoJSON FeatureCollection.
func (s *Server) route(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		s.fail(c, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}

	src, err := s.atlas.Lookup(from)
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	dst, err := s.atlas.Lookup(to)
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	key := strconv.Itoa(src.ID) + ">" + strconv.Itoa(dst.ID)
	v, err, _ := s.routes.Do(key, func() (any, error) {
		return s.search(src, dst)
	})
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		s.fail(c, http.StatusNotFound, err)
		return
	case err != nil:
		s.logger.Error("route failed",
			slog.String("request_id", c.GetString(RequestIDHeader)),
			slog.String("from", src.INSEE),
			slog.String("to", dst.INSEE),
			slog.Any("error", err))
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", v.([]byte))
}

// search computes a route and renders it as GeoJSON bytes.
func (s *Server) search(src, dst *municipality.Municipality) ([]byte, error) {
	// The heap queue keeps a single query on a national graph well under
	// a second.
	r, err := s.atlas.Route(src, dst, dijkstra.WithQueue(dijkstra.QueueHeap))
	if err != nil {
		return nil, err
	}
	fc, err := export.FeatureCollection(r, export.Options{Points: s.points})
	if err != nil {
		return nil, err
	}
	props := fc.Features[0].Properties
	props["weighted_distance"] = r.Path.Distance
	if s.pois != nil {
		st := municipality.Stats(r, s.pois, s.radius)
		props["pois"] = st.TotalPOIs
		props["stops_with_pois"] = st.StopsWithPOIs
		props["stops_without_pois"] = st.StopsWithoutPOIs
	}

	return fc.MarshalJSON()
}
