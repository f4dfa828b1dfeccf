//go:build unit || e2e

// Package fakebackend is an in-memory booking backend speaking the REST API
// the console client expects.
package fakebackend

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type Call struct {
	Method      string
	Path        string
	Body        map[string]any
	Token       string
	TraceParent string
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	bookings  map[string]map[string]any
	guests    map[string][]map[string]any
	completed map[string]bool
	failures  map[string]int
	calls     []Call
}

func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		bookings:  make(map[string]map[string]any),
		guests:    make(map[string][]map[string]any),
		completed: make(map[string]bool),
		failures:  make(map[string]int),
	}

	r := gin.New()
	r.Use(s.record)
	r.GET("/bookings/:id", s.getBooking)
	r.GET("/bookings/:id/guests", s.getGuests)
	r.PUT("/bookings/:id/status", s.changeStatus)
	r.PUT("/guests/:id/insurance-status", s.changeInsurance)
	r.POST("/bookings/:id/completion/company-confirm", s.companyConfirm)
	r.GET("/bookings/:id/completion", s.completion)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// PutBooking stores b (backend JSON shape, see builder.BuildBackendJSON) and its guests.
func (s *Server) PutBooking(b map[string]any, guests ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := b["id"].(string)
	s.bookings[id] = b
	s.guests[id] = guests
}

// FailOn makes every request whose "METHOD path" matches key answer status.
func (s *Server) FailOn(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

func (s *Server) SetCompleted(bookingID string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[bookingID] = v
}

func (s *Server) Booking(id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.bookings[id]))
	for k, v := range s.bookings[id] {
		out[k] = v
	}
	return out
}

func (s *Server) Guest(bookingID, guestID string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests[bookingID] {
		if g["id"] == guestID {
			return g
		}
	}
	return nil
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Writes returns the non-GET calls in order.
func (s *Server) Writes() []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Method != http.MethodGet {
			out = append(out, c)
		}
	}
	return out
}

func (s *Server) record(c *gin.Context) {
	var body map[string]any
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&body)
		c.Set("body", body)
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Body:        body,
		Token:       strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "),
		TraceParent: c.GetHeader("traceparent"),
	})
	status, fail := s.failures[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()

	if fail {
		c.AbortWithStatusJSON(status, gin.H{"message": "injected failure"})
		return
	}
	c.Next()
}

func bodyOf(c *gin.Context) map[string]any {
	v, _ := c.Get("body")
	m, _ := v.(map[string]any)
	return m
}

func (s *Server) getBooking(c *gin.Context) {
	s.mu.Lock()
	b, ok := s.bookings[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) getGuests(c *gin.Context) {
	s.mu.Lock()
	guests, ok := s.guests[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	if guests == nil {
		guests = []map[string]any{}
	}
	c.JSON(http.StatusOK, guests)
}

func (s *Server) changeStatus(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	status, _ := bodyOf(c)["status"].(string)
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	b["status"] = status
	c.JSON(http.StatusOK, b)
}

func (s *Server) changeInsurance(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, _ := bodyOf(c)["status"].(string)
	for _, guests := range s.guests {
		for _, g := range guests {
			if g["id"] == c.Param("id") {
				g["insuranceStatus"] = status
				c.Status(http.StatusNoContent)
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "guest not found"})
}

func (s *Server) companyConfirm(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	b["companyConfirmedCompletion"] = true
	if b["userConfirmedCompletion"] == true {
		b["status"] = "BOOKING_SUCCESS"
		s.completed[c.Param("id")] = true
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) completion(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"completed": s.completed[c.Param("id")]})
}
