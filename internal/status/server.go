// Package status serves a read-only JSON view of the running
// simulation: the static planet table and a per-frame state snapshot.
package status

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alanbchristie/go-pico-solar-system/internal/orbit"
)

// PlanetInfo is one row of the static planet table as served by the API.
type PlanetInfo struct {
	Name       string  `json:"name"`
	PeriodDays float64 `json:"orbital_period_days"`
	RadiusPx   int     `json:"orbit_radius_px"`
	Track      string  `json:"track_class"`
	PhaseDeg   float64 `json:"baseline_phase_deg"`
	Home       bool    `json:"home"`
}

// BodyPosition is a planet's current screen position.
type BodyPosition struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Snapshot is one frame's published state. A snapshot is immutable once
// published; the frame loop replaces it whole after each tick, so
// handlers never see partial state.
type Snapshot struct {
	Date      string         `json:"date"`
	DayOffset float64        `json:"day_offset"`
	Mode      string         `json:"mode"`
	NightMode bool           `json:"night_mode"`
	DemoMode  bool           `json:"demo_mode"`
	Planets   []BodyPosition `json:"planets"`
}

// Server is the read-only status API.
type Server struct {
	addr    string
	router  *gin.Engine
	planets []PlanetInfo
	snap    atomic.Pointer[Snapshot]
}

// NewServer builds the API router for the given listen address.
func NewServer(addr string) *Server {
	s := &Server{addr: addr, planets: planetTable()}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	api := r.Group("/api")
	{
		api.GET("/planets", s.getPlanets)
		api.GET("/planets/:name", s.getPlanet)
		api.GET("/state", s.getState)
	}

	s.router = r
	return s
}

// Publish replaces the served snapshot. Called by the frame loop after
// each tick; safe to call concurrently with request handling.
func (s *Server) Publish(snap Snapshot) {
	s.snap.Store(&snap)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Serve blocks, serving the API on the configured address.
func (s *Server) Serve() error { return s.router.Run(s.addr) }

// getPlanets returns the whole static planet table.
func (s *Server) getPlanets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":  s.planets,
		"count": len(s.planets),
	})
}

// getPlanet returns a single planet by (case-insensitive) name.
func (s *Server) getPlanet(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))
	for _, p := range s.planets {
		if strings.ToLower(p.Name) == name {
			c.JSON(http.StatusOK, gin.H{"data": p})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "planet not found"})
}

// getState returns the most recently published snapshot.
func (s *Server) getState(c *gin.Context) {
	snap := s.snap.Load()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no frame published yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": snap})
}

// planetTable converts the orbit package's table into the API shape.
func planetTable() []PlanetInfo {
	out := make([]PlanetInfo, 0, len(orbit.Planets))
	for _, p := range orbit.Planets {
		out = append(out, PlanetInfo{
			Name:       p.Name,
			PeriodDays: p.PeriodDays,
			RadiusPx:   p.RadiusPx,
			Track:      p.Track.String(),
			PhaseDeg:   p.PhaseDeg,
			Home:       p.Home,
		})
	}
	return out
}
