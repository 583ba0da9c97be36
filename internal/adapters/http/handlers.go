package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/infrastructure/storage"
	"svw.info/brainbreak/internal/usecase"
)

// Handler exposes the engine over JSON. Range errors coming in from the
// network are rejected here with 400s; the engine itself treats them as
// programmer errors and panics, so nothing out of range may pass this layer.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// checkGrid rejects grids carrying values outside 0-9. The 9x9 shape is
// enforced by the array type during binding.
func checkGrid(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("cell (%d,%d) holds %d, want 0-9", r, c, g[r][c])
			}
		}
	}
	return nil
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty" binding:"required,difficulty"`
	Seed       int64  `json:"seed"`
}

type generateResp struct {
	ID         string      `json:"id"`
	Difficulty string      `json:"difficulty"`
	Seed       int64       `json:"seed"`
	Puzzle     domain.Grid `json:"puzzle"`
	Solution   domain.Grid `json:"solution"`
	Clues      int         `json:"clues"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

// POST /api/puzzles
func (h *Handler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	diff, _ := domain.ParseDifficulty(req.Difficulty)
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.NewPuzzle(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		ID:         p.ID,
		Difficulty: p.Difficulty.String(),
		Seed:       p.Seed,
		Puzzle:     p.Puzzle,
		Solution:   p.Solution,
		Clues:      p.Clues(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Placement legality ----

type placementReq struct {
	Grid  domain.Grid `json:"grid"`
	Row   int         `json:"row" binding:"min=0,max=8"`
	Col   int         `json:"col" binding:"min=0,max=8"`
	Digit uint8       `json:"digit" binding:"required,min=1,max=9"`
}

// POST /api/placements/check
func (h *Handler) CheckPlacement(c *gin.Context) {
	var req placementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := checkGrid(&req.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	legal := h.UC.CheckPlacement(&req.Grid, domain.Placement{Row: req.Row, Col: req.Col, Digit: req.Digit})
	c.JSON(http.StatusOK, gin.H{"legal": legal})
}

// ---- Win check ----

type gridReq struct {
	Grid domain.Grid `json:"grid"`
}

// POST /api/grids/win
func (h *Handler) CheckWin(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := checkGrid(&req.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"won": h.UC.CheckWin(&req.Grid)})
}

// ---- Conflicts ----

// POST /api/grids/conflicts
func (h *Handler) Conflicts(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := checkGrid(&req.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(&req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

// ---- Solve ----

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

// POST /api/grids/solve
func (h *Handler) Solve(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := checkGrid(&req.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, st, err := h.UC.Solve(req.Grid)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "nodes": st.Nodes})
		return
	}
	c.JSON(http.StatusOK, solveResp{Grid: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Hint ----

// POST /api/hints
func (h *Handler) Hint(c *gin.Context) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := checkGrid(&req.Grid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pl, found, err := h.UC.Hint(&req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "placement": pl})
}

// ---- Archive ----

// GET /api/puzzles/:id
func (h *Handler) GetPuzzle(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/puzzles
func (h *Handler) ListPuzzles(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": metas})
}
