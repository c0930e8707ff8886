package ws

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/formulalab/backend/internal/algebra"
	"github.com/formulalab/backend/internal/history"
	"github.com/formulalab/backend/internal/physics"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CalcHub is the single hub for all live calculator sessions.
var CalcHub *Hub

func init() {
	CalcHub = NewHub()
	go runCalcHub(CalcHub)
}

// calcMessage is one incoming frame from a calculator client.
type calcMessage struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Formula string          `json:"formula"`
	Inputs  json.RawMessage `json:"inputs"`
}

// operand is a complex number in an incoming frame.
type operand struct {
	Re *float64 `json:"re"`
	Im *float64 `json:"im"`
}

// HandleWebSocket handles WebSocket connections for live calculator sessions.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		id:   newClientID(),
		ip:   c.ClientIP(),
		send: make(chan []byte, 256),
	}

	CalcHub.register <- client

	go client.writePump()
	go client.readPump()
}

// newClientID generates a random connection id.
func newClientID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// runCalcHub runs the hub's register/unregister loop.
func runCalcHub(h *Hub) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			count := len(h.clients)
			h.mu.Unlock()

			log.Printf("[WS] Client %s connected (%d active)", client.id, count)
			client.reply(map[string]interface{}{"type": "connected", "client_id": client.id})

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.id]; ok && cur == client {
				delete(h.clients, client.id)
				close(client.send)
				log.Printf("[WS] Client %s disconnected (%d active)", client.id, len(h.clients))
			}
			h.mu.Unlock()
		}
	}
}

// readPump reads frames from a calculator session.
func (c *Client) readPump() {
	defer func() {
		CalcHub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(65536)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error (unexpected) for client %s: %v", c.id, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", c.id, err)
			}
			break
		}

		var msg calcMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		c.handleMessage(msg)
	}
}

// handleMessage processes one incoming calculator frame.
func (c *Client) handleMessage(msg calcMessage) {
	switch msg.Type {
	case "eval":
		c.handleEval(msg)

	case "ping":
		c.reply(map[string]interface{}{"id": msg.ID, "type": "pong"})

	default:
		c.sendError(msg.ID, "Unknown message type")
	}
}

// handleEval dispatches an eval frame to a formula evaluator.
func (c *Client) handleEval(msg calcMessage) {
	switch msg.Formula {
	case "bernoulli":
		c.evalBernoulli(msg)
	case "brewster":
		c.evalBrewster(msg)
	case "kirchhoff":
		c.evalKirchhoff(msg)
	case "malus":
		c.evalMalus(msg)
	case "complex":
		c.evalComplex(msg)
	default:
		c.sendError(msg.ID, "Unknown formula: "+msg.Formula)
	}
}

func (c *Client) evalBernoulli(msg calcMessage) {
	var in struct {
		Pressure *float64 `json:"pressure"`
		Density  *float64 `json:"density"`
		Velocity *float64 `json:"velocity"`
		Height   *float64 `json:"height"`
		Gravity  *float64 `json:"gravity"`
	}
	if err := json.Unmarshal(msg.Inputs, &in); err != nil ||
		in.Pressure == nil || in.Density == nil || in.Velocity == nil || in.Height == nil {
		c.sendError(msg.ID, "pressure, density, velocity and height are required")
		return
	}

	gravity := physics.StandardGravity
	if in.Gravity != nil {
		gravity = *in.Gravity
	}
	if !finiteAll(*in.Pressure, *in.Density, *in.Velocity, *in.Height, gravity) {
		c.sendError(msg.ID, "inputs must be finite numbers")
		return
	}

	result := physics.TotalPressureAt(*in.Pressure, *in.Density, *in.Velocity, *in.Height, gravity)
	if !finiteAll(result) {
		c.sendError(msg.ID, "result is not finite")
		return
	}

	c.reply(map[string]interface{}{"id": msg.ID, "type": "result", "formula": "bernoulli", "result": result})
	go history.Record(dbClient, rdbClient, wsConfig, "bernoulli", map[string]interface{}{
		"pressure": *in.Pressure,
		"density":  *in.Density,
		"velocity": *in.Velocity,
		"height":   *in.Height,
		"gravity":  gravity,
	}, result, c.ip)
}

func (c *Client) evalBrewster(msg calcMessage) {
	var in struct {
		N1 *float64 `json:"n1"`
		N2 *float64 `json:"n2"`
	}
	if err := json.Unmarshal(msg.Inputs, &in); err != nil || in.N1 == nil || in.N2 == nil {
		c.sendError(msg.ID, "n1 and n2 are required")
		return
	}
	if !finiteAll(*in.N1, *in.N2) {
		c.sendError(msg.ID, "inputs must be finite numbers")
		return
	}
	if *in.N1 == 0 {
		c.sendError(msg.ID, "n1 must be non-zero")
		return
	}

	result := physics.BrewsterAngle(*in.N1, *in.N2)
	c.reply(map[string]interface{}{"id": msg.ID, "type": "result", "formula": "brewster", "result": result})
	go history.Record(dbClient, rdbClient, wsConfig, "brewster", map[string]interface{}{
		"n1": *in.N1,
		"n2": *in.N2,
	}, result, c.ip)
}

func (c *Client) evalKirchhoff(msg calcMessage) {
	var in struct {
		Voltages []float64 `json:"voltages"`
	}
	if err := json.Unmarshal(msg.Inputs, &in); err != nil || in.Voltages == nil {
		c.sendError(msg.ID, "voltages is required")
		return
	}
	if !finiteAll(in.Voltages...) {
		c.sendError(msg.ID, "inputs must be finite numbers")
		return
	}

	sum := physics.VoltageLoopSum(in.Voltages)
	satisfied := physics.VoltageLoopSatisfied(in.Voltages)
	c.reply(map[string]interface{}{
		"id":        msg.ID,
		"type":      "result",
		"formula":   "kirchhoff",
		"satisfied": satisfied,
		"sum":       sum,
	})
	go history.Record(dbClient, rdbClient, wsConfig, "kirchhoff", map[string]interface{}{
		"voltages": in.Voltages,
	}, sum, c.ip)
}

func (c *Client) evalMalus(msg calcMessage) {
	var in struct {
		InitialIntensity *float64 `json:"initial_intensity"`
		AngleDegrees     *float64 `json:"angle_degrees"`
	}
	if err := json.Unmarshal(msg.Inputs, &in); err != nil || in.InitialIntensity == nil || in.AngleDegrees == nil {
		c.sendError(msg.ID, "initial_intensity and angle_degrees are required")
		return
	}
	if !finiteAll(*in.InitialIntensity, *in.AngleDegrees) {
		c.sendError(msg.ID, "inputs must be finite numbers")
		return
	}

	result := physics.TransmittedIntensity(*in.InitialIntensity, *in.AngleDegrees)
	c.reply(map[string]interface{}{"id": msg.ID, "type": "result", "formula": "malus", "result": result})
	go history.Record(dbClient, rdbClient, wsConfig, "malus", map[string]interface{}{
		"initial_intensity": *in.InitialIntensity,
		"angle_degrees":     *in.AngleDegrees,
	}, result, c.ip)
}

func (c *Client) evalComplex(msg calcMessage) {
	var in struct {
		Op string   `json:"op"`
		A  *operand `json:"a"`
		B  *operand `json:"b"`
	}
	if err := json.Unmarshal(msg.Inputs, &in); err != nil || in.A == nil || in.A.Re == nil || in.A.Im == nil {
		c.sendError(msg.ID, "op and operand a are required")
		return
	}
	if !finiteAll(*in.A.Re, *in.A.Im) {
		c.sendError(msg.ID, "inputs must be finite numbers")
		return
	}
	a := algebra.NewComplex(*in.A.Re, *in.A.Im)

	var b algebra.Complex
	switch in.Op {
	case "add", "sub", "mul", "div":
		if in.B == nil || in.B.Re == nil || in.B.Im == nil {
			c.sendError(msg.ID, "operand b is required for "+in.Op)
			return
		}
		if !finiteAll(*in.B.Re, *in.B.Im) {
			c.sendError(msg.ID, "inputs must be finite numbers")
			return
		}
		b = algebra.NewComplex(*in.B.Re, *in.B.Im)
	}

	switch in.Op {
	case "add":
		c.replyComplex(msg.ID, in.Op, a.Plus(b))
	case "sub":
		c.replyComplex(msg.ID, in.Op, a.Minus(b))
	case "mul":
		c.replyComplex(msg.ID, in.Op, a.Times(b))
	case "div":
		q, err := a.Div(b)
		if err != nil {
			c.sendError(msg.ID, err.Error())
			return
		}
		c.replyComplex(msg.ID, in.Op, q)
	case "conjugate":
		c.replyComplex(msg.ID, in.Op, a.Conjugate())
	case "abs":
		c.reply(map[string]interface{}{"id": msg.ID, "type": "result", "formula": "complex", "op": "abs", "result": a.Abs()})
	case "arg":
		c.reply(map[string]interface{}{"id": msg.ID, "type": "result", "formula": "complex", "op": "arg", "result": a.Arg()})
	default:
		c.sendError(msg.ID, "Unknown complex op: "+in.Op)
	}
}

// replyComplex sends a complex-valued result frame.
func (c *Client) replyComplex(id, op string, z algebra.Complex) {
	if !finiteAll(z.Real(), z.Imag()) {
		c.sendError(id, "result is not finite")
		return
	}
	c.reply(map[string]interface{}{
		"id":      id,
		"type":    "result",
		"formula": "complex",
		"op":      op,
		"result":  map[string]float64{"re": z.Real(), "im": z.Imag()},
		"display": z.String(),
	})
}

// finiteAll reports whether every value is a finite number.
func finiteAll(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
