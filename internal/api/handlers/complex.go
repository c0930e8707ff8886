package handlers

import (
	"net/http"

	"github.com/formulalab/backend/internal/algebra"
	"github.com/gin-gonic/gin"
)

// complexOperand is one complex number in a request body
type complexOperand struct {
	Re *float64 `json:"re"`
	Im *float64 `json:"im"`
}

// EvaluateComplex performs the complex arithmetic operation named by :op.
// Binary ops (add, sub, mul, div) take operands a and b; conjugate, abs and
// arg take a alone; polar constructs a value from magnitude and angle.
func EvaluateComplex() gin.HandlerFunc {
	return func(c *gin.Context) {
		op := c.Param("op")

		if op == "polar" {
			var req struct {
				Magnitude *float64 `json:"magnitude" binding:"required"`
				Angle     *float64 `json:"angle" binding:"required"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "magnitude and angle are required"})
				return
			}
			if !allFinite(*req.Magnitude, *req.Angle) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
				return
			}
			respondComplex(c, algebra.NewPolar(*req.Magnitude, *req.Angle))
			return
		}

		var req struct {
			A *complexOperand `json:"a" binding:"required"`
			B *complexOperand `json:"b"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "operand a is required"})
			return
		}
		if req.A.Re == nil || req.A.Im == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "operand a requires re and im"})
			return
		}
		if !allFinite(*req.A.Re, *req.A.Im) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
			return
		}
		a := algebra.NewComplex(*req.A.Re, *req.A.Im)

		var b algebra.Complex
		switch op {
		case "add", "sub", "mul", "div":
			if req.B == nil || req.B.Re == nil || req.B.Im == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "operand b is required for " + op})
				return
			}
			if !allFinite(*req.B.Re, *req.B.Im) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
				return
			}
			b = algebra.NewComplex(*req.B.Re, *req.B.Im)
		}

		switch op {
		case "add":
			respondComplex(c, a.Plus(b))
		case "sub":
			respondComplex(c, a.Minus(b))
		case "mul":
			respondComplex(c, a.Times(b))
		case "div":
			q, err := a.Div(b)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			respondComplex(c, q)
		case "conjugate":
			respondComplex(c, a.Conjugate())
		case "abs":
			c.JSON(http.StatusOK, gin.H{"result": a.Abs()})
		case "arg":
			c.JSON(http.StatusOK, gin.H{"result": a.Arg()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown operation: " + op})
		}
	}
}

// respondComplex writes a complex-valued result. Components that cannot be
// represented in JSON (overflowed IEEE division) are rejected at the boundary.
func respondComplex(c *gin.Context, z algebra.Complex) {
	if !allFinite(z.Real(), z.Imag()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "result is not finite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"re": z.Real(), "im": z.Imag()},
		"display": z.String(),
	})
}
