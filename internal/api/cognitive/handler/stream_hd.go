package cognitiveHandler

import (
	"AcawsGolang/internal/api/cognitive"
	"encoding/base64"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

func (h *CognitiveHandler) handleWebSocket(c *websocket.Conn) {
	h.log.Info("Cognitive stream WebSocket client connected")
	defer h.log.Info("Cognitive stream WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var msg cognitive.StreamMessage
		if err := c.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Cognitive WebSocket error: %v", err)
			} else {
				h.log.Info("Cognitive WebSocket connection closed")
			}
			break
		}

		if err := h.validator.Struct(msg); err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": "invalid message: " + err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if !h.handleStreamMessage(c, msg) {
			break
		}
	}
}

// handleStreamMessage dispatches one inbound message. Returns false when the
// connection should close.
func (h *CognitiveHandler) handleStreamMessage(c *websocket.Conn, msg cognitive.StreamMessage) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch msg.Type {
	case "ping":
		h.cognitiveService.TouchSession(msg.SessionID)
		if err := h.writeStreamJSON(c, map[string]string{"type": "pong", "session_id": msg.SessionID}); err != nil {
			return false
		}
		return true

	case "landmarks":
		summary, err := h.cognitiveService.Analyze(ctx, cognitive.AnalyzeRequest{
			SessionID: msg.SessionID,
			Landmarks: msg.Landmarks,
			Timestamp: msg.Timestamp,
		})
		if err != nil {
			h.log.Errorf("Error analyzing landmark message: %v", err)
			if writeErr := h.writeStreamJSON(c, map[string]string{"error": err.Error()}); writeErr != nil {
				return false
			}
			return true
		}
		return h.writeStreamJSON(c, summary) == nil

	case "frame":
		frame, err := base64.StdEncoding.DecodeString(msg.Frame)
		if err != nil {
			if writeErr := h.writeStreamJSON(c, map[string]string{"error": "invalid frame encoding"}); writeErr != nil {
				return false
			}
			return true
		}

		summary, err := h.cognitiveService.AnalyzeFrame(ctx, msg.SessionID, frame)
		if err != nil {
			h.log.Errorf("Error analyzing frame message: %v", err)
			if writeErr := h.writeStreamJSON(c, map[string]string{"error": err.Error()}); writeErr != nil {
				return false
			}
			return true
		}
		return h.writeStreamJSON(c, summary) == nil
	}

	return true
}

func (h *CognitiveHandler) writeStreamJSON(c *websocket.Conn, payload interface{}) error {
	if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		h.log.Errorf("Error setting write deadline: %v", err)
		return err
	}

	if err := c.WriteJSON(payload); err != nil {
		h.log.Errorf("Error writing JSON response: %v", err)
		return err
	}

	if err := c.SetWriteDeadline(time.Time{}); err != nil {
		h.log.Errorf("Error resetting write deadline: %v", err)
		return err
	}

	return nil
}
