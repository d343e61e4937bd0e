package calculator

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"unitcalc/internal/calc"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS-мидлварь к апгрейду не применяется, поэтому origin проверяем сами —
	// пускаем те же адреса фронта, что и HTTP API.
	CheckOrigin: func(r *http.Request) bool {
		switch r.Header.Get("Origin") {
		case "", "http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173":
			return true
		}
		return false
	},
}

// session держит одну сессию калькулятора поверх WebSocket: состояние живёт
// на сервере, клиент шлёт действия, сервер отвечает новым состоянием.
// Действия обрабатываются строго по одному — одна горутина на соединение,
// конкурентных мутаций состояния нет.
func (c *Controller) session(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.log.Warn("session upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	state := calc.NewState()
	if err := conn.WriteJSON(ApplyResponse{State: fromState(state)}); err != nil {
		return
	}

	for {
		var action ActionDTO
		if err := conn.ReadJSON(&action); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("session read failed", "error", err)
			}
			return
		}

		if err := action.Validate(); err != nil {
			if err := conn.WriteJSON(ErrorResponse{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		next, calculation := c.uc.Apply(ctx.Request.Context(), state, action.toAction())
		state = next

		resp := ApplyResponse{State: fromState(state), Calculation: fromCalculation(calculation)}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
