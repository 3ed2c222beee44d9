package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/netresearch/go-cronnext"
)

type handlers struct {
	calc     atomic.Pointer[cronnext.Calculator]
	maxCount int
}

func newHandlers(calc *cronnext.Calculator, maxCount int) *handlers {
	h := &handlers{maxCount: maxCount}
	h.calc.Store(calc)
	return h
}

// follow swaps in calculators from updates until ctx is done or updates is
// closed.
func (h *handlers) follow(ctx context.Context, updates <-chan *cronnext.Calculator) {
	for {
		select {
		case <-ctx.Done():
			return
		case calc, ok := <-updates:
			if !ok {
				return
			}
			if calc != nil {
				h.calc.Store(calc)
			}
		}
	}
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// next handles GET /api/cron/next?expression=&count=&at=.
func (h *handlers) next(c *gin.Context) {
	expr := c.Query("expression")
	if expr == "" {
		badRequest(c, "expression is required", "")
		return
	}

	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "invalid count", fmt.Sprintf("count must be a positive integer, got %q", raw))
			return
		}
		if n > h.maxCount {
			badRequest(c, "invalid count", fmt.Sprintf("count must not exceed %d", h.maxCount))
			return
		}
		count = n
	}

	calc := h.calc.Load()
	ref := calc.Now()
	if raw := c.Query("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "invalid time format", err.Error())
			return
		}
		ref = at
	}

	e, err := cronnext.Parse(expr)
	if err != nil {
		writeError(c, err)
		return
	}
	runs, err := calc.NextN(expr, ref, count)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NextResponse{
		Expression: expr,
		Canonical:  e.String(),
		Alias:      e.Alias(),
		Next:       cronnext.FormatExecution(runs[0]),
		NextTime:   runs[0],
		Runs:       runs,
	})
}

// validate handles POST /api/cron/validate.
func (h *handlers) validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, newAnalysisResponse(h.calc.Load().Analyze(req.Expression)))
}

func (h *handlers) aliases(c *gin.Context) {
	c.JSON(http.StatusOK, cronnext.Aliases())
}

// writeError maps calculator errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cronnext.ErrFormat):
		badRequest(c, "invalid cron expression", err.Error())
	case errors.Is(err, cronnext.ErrSearchExhausted):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "no execution time found",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
			Details: err.Error(),
		})
	}
}

func badRequest(c *gin.Context, msg, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: msg,
		Details: details,
	})
}
