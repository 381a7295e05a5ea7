package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tinrooster/cabledb/internal/db"
	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/notify"
	"github.com/tinrooster/cabledb/internal/topology"
	"gorm.io/gorm"
)

// service wires the session, persistence, and notifiers behind the routes.
type service struct {
	session   *matrix.Session
	store     *gorm.DB
	notifiers notify.Multi
	debouncer *matrix.Debouncer
}

func newService(session *matrix.Session, store *gorm.DB, notifiers notify.Multi) *service {
	svc := &service{session: session, store: store, notifiers: notifiers}
	svc.debouncer = matrix.NewDebouncer(matrix.DefaultQuiescence, svc.commitEdit)
	return svc
}

// commitEdit lands a settled cell edit on the session and persists the
// resulting override set.
func (s *service) commitEdit(e matrix.CellEdit) {
	if err := s.session.SetCell(e.Row, e.Col, e.Value); err != nil {
		log.Printf("server: drop edit %s/%s: %v", e.Row, e.Col, err)
		return
	}
	s.persistOverrides()
}

func (s *service) persistOverrides() {
	if s.store == nil {
		return
	}
	if err := db.ReplaceOverrides(s.store, s.session.Overrides()); err != nil {
		log.Printf("server: persist overrides: %v", err)
	}
}

func (s *service) persistRows() {
	if s.store == nil {
		return
	}
	if err := db.ReplaceCustomRows(s.store, s.session.Rows()); err != nil {
		log.Printf("server: persist custom rows: %v", err)
	}
}

func (s *service) announce(text string) {
	if err := s.notifiers.Post(text); err != nil {
		log.Printf("server: %v", err)
	}
}

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, svc *service) {
	router.GET("/api/distance", svc.handleDistance)
	router.GET("/api/matrix", svc.handleMatrix)
	router.GET("/api/rows", svc.handleRowList)
	router.POST("/api/rows", svc.handleRowAdd)
	router.DELETE("/api/rows/:prefix", svc.handleRowRemove)
	router.POST("/api/matrix/cell", svc.handleCellEdit)
	router.POST("/api/matrix/rescale", svc.handleRescale)
}

func (s *service) handleDistance(c *gin.Context) {
	a := c.Query("a")
	b := c.Query("b")
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters a and b are required"})
		return
	}
	d, err := s.session.Distance(a, b)
	if err != nil {
		// An invalid cross-reference reports "not applicable", never a
		// numeric stand-in.
		c.JSON(http.StatusNotFound, gin.H{"error": "not applicable", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"a": a, "b": b, "distance": d})
}

func (s *service) handleMatrix(c *gin.Context) {
	var snap *matrix.Snapshot
	switch c.DefaultQuery("view", "editable") {
	case "computed":
		snap = s.session.Computed()
	case "editable":
		snap = s.session.Editable()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be computed or editable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"positions": snap.Positions, "matrix": snap.Cells})
}

// rowRequest is the JSON shape for adding a custom row.
type rowRequest struct {
	Prefix            string `json:"prefix"`
	StartNum          int    `json:"start_num"`
	EndNum            int    `json:"end_num"`
	EndpointReference string `json:"endpoint_reference"`
	EndpointMode      string `json:"endpoint_mode"`
	FixedOffset       int    `json:"fixed_offset"`
}

func (s *service) handleRowList(c *gin.Context) {
	rows := s.session.Rows()
	out := make([]rowRequest, len(rows))
	for i, r := range rows {
		out[i] = rowRequest{
			Prefix:            r.Prefix,
			StartNum:          r.StartNum,
			EndNum:            r.EndNum,
			EndpointReference: r.EndpointReference,
			EndpointMode:      string(r.EndpointMode),
			FixedOffset:       r.FixedOffset,
		}
	}
	c.JSON(http.StatusOK, gin.H{"rows": out})
}

func (s *service) handleRowAdd(c *gin.Context) {
	var req rowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode := topology.ModeEndpoint
	if req.EndpointMode != "" {
		var err error
		mode, err = topology.ParseEndpointMode(req.EndpointMode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	row := topology.CustomRow{
		Prefix:            req.Prefix,
		StartNum:          req.StartNum,
		EndNum:            req.EndNum,
		EndpointReference: req.EndpointReference,
		EndpointMode:      mode,
		FixedOffset:       req.FixedOffset,
	}
	if err := s.session.AddRow(row); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, topology.ErrInvalidCustomRow) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.persistRows()
	s.persistOverrides() // reseed cleared the override set
	s.announce(notify.RowAdded(row.Prefix, row.PositionCount()))
	c.JSON(http.StatusCreated, gin.H{"rows": len(s.session.Rows())})
}

func (s *service) handleRowRemove(c *gin.Context) {
	prefix := c.Param("prefix")
	if err := s.session.RemoveRow(prefix); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, topology.ErrInvalidCustomRow) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.persistRows()
	s.persistOverrides()
	s.announce(notify.RowRemoved(prefix))
	c.JSON(http.StatusOK, gin.H{"rows": len(s.session.Rows())})
}

// cellRequest carries the value as a string: the input boundary coerces
// non-numeric input to 0 rather than rejecting it.
type cellRequest struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Value string `json:"value"`
}

func (s *service) handleCellEdit(c *gin.Context) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := s.session.Editable().Index(req.Row); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not applicable", "detail": "unknown position " + req.Row})
		return
	}
	if _, ok := s.session.Editable().Index(req.Col); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not applicable", "detail": "unknown position " + req.Col})
		return
	}
	value, err := strconv.Atoi(req.Value)
	if err != nil {
		value = 0
	}
	s.debouncer.Edit(req.Row, req.Col, value)
	c.JSON(http.StatusAccepted, gin.H{"row": req.Row, "col": req.Col, "value": value})
}

type rescaleRequest struct {
	Prefix  string  `json:"prefix"`
	Percent float64 `json:"percent"`
}

func (s *service) handleRescale(c *gin.Context) {
	var req rescaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	touched := s.session.RescaleSeries(req.Prefix, req.Percent)
	if touched > 0 {
		s.persistOverrides()
	}
	c.JSON(http.StatusOK, gin.H{"rows_touched": touched})
}
