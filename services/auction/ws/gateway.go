// Package ws is the realtime session gateway. Each websocket connection is
// one observer: it receives the init snapshot on connect, every broadcast
// afterwards, and acks for the requests that expect a reply.
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"live-auction/internal/broadcast"
	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Inbound request names
const (
	RequestLogin          = "login"
	RequestToggleAuction  = "toggleAuction"
	RequestStartAll       = "startAllAuctions"
	RequestStopAll        = "stopAllAuctions"
	RequestPlaceBid       = "placeBid"
	RequestUpdateCategory = "updateCategory"
)

const replyBuffer = 16

// AuctionService is the part of the auction service a session talks to
type AuctionService interface {
	Connect() *broadcast.Subscriber
	Disconnect(sub *broadcast.Subscriber)
	Login(userID, password string) (model.AuthResult, error)
	ToggleAuction(userID string, itemID int, active bool) error
	StartAllAuctions(userID string) error
	StopAllAuctions(userID string) error
	PlaceBid(itemID int, bidder, password string, amount int64) (model.Bid, error)
	UpdateCategory(userID, category string, count float64) error
}

// Options tunes connection keepalive and limits
type Options struct {
	WriteWait       time.Duration
	PongWait        time.Duration
	PingPeriod      time.Duration
	MaxMessageBytes int64
	AllowedOrigins  []string
}

// DefaultOptions returns the keepalive settings used when none are configured
func DefaultOptions() Options {
	return Options{
		WriteWait:       10 * time.Second,
		PongWait:        60 * time.Second,
		PingPeriod:      54 * time.Second,
		MaxMessageBytes: 4096,
		AllowedOrigins:  []string{"*"},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.WriteWait <= 0 {
		o.WriteWait = def.WriteWait
	}
	if o.PongWait <= 0 {
		o.PongWait = def.PongWait
	}
	if o.PingPeriod <= 0 || o.PingPeriod >= o.PongWait {
		o.PingPeriod = o.PongWait * 9 / 10
	}
	if o.MaxMessageBytes <= 0 {
		o.MaxMessageBytes = def.MaxMessageBytes
	}
	if len(o.AllowedOrigins) == 0 {
		o.AllowedOrigins = def.AllowedOrigins
	}
	return o
}

// Frame is the envelope of every inbound message
type Frame struct {
	Event string          `json:"event"`
	ID    *int64          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// Gateway upgrades HTTP requests to websocket sessions
type Gateway struct {
	service  AuctionService
	opts     Options
	upgrader websocket.Upgrader
}

// NewGateway creates a Gateway relaying sessions to service.
// Zero fields in opts fall back to DefaultOptions.
func NewGateway(service AuctionService, opts Options) *Gateway {
	g := &Gateway{service: service, opts: opts.withDefaults()}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}
	return g
}

// ServeWS handles GET /ws. It blocks for the lifetime of the session.
func (g *Gateway) ServeWS(c *gin.Context) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("ServeWS: upgrade failed", map[string]any{"remote_addr": c.Request.RemoteAddr, "error": err.Error()})
		return
	}

	s := &session{
		gateway: g,
		conn:    conn,
		sub:     g.service.Connect(),
		replies: make(chan broadcast.Event, replyBuffer),
		done:    make(chan struct{}),
	}
	utils.Info("session connected", map[string]any{"session_id": s.sub.ID(), "remote_addr": c.Request.RemoteAddr})

	go s.writePump()
	s.readPump()

	utils.Info("session disconnected", map[string]any{"session_id": s.sub.ID()})
}

func (g *Gateway) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range g.opts.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

type session struct {
	gateway *Gateway
	conn    *websocket.Conn
	sub     *broadcast.Subscriber
	replies chan broadcast.Event
	done    chan struct{}
}

// readPump decodes inbound frames until the connection fails, then tears the session down
func (s *session) readPump() {
	defer func() {
		s.gateway.service.Disconnect(s.sub)
		close(s.done)
		s.conn.Close()
	}()

	opts := s.gateway.opts
	s.conn.SetReadLimit(opts.MaxMessageBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(opts.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(opts.PongWait))
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Warn("session read error", map[string]any{"session_id": s.sub.ID(), "error": err.Error()})
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(message, &frame); err != nil {
			utils.Warn("session: malformed frame", map[string]any{"session_id": s.sub.ID(), "error": err.Error()})
			continue
		}
		s.dispatch(frame)
	}
}

// writePump is the only writer on the connection
func (s *session) writePump() {
	opts := s.gateway.opts
	ticker := time.NewTicker(opts.PingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case e, ok := <-s.sub.Events():
			if !ok {
				// evicted or disconnected
				_ = s.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.write(e); err != nil {
				return
			}
		case e := <-s.replies:
			if err := s.write(e); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *session) write(e broadcast.Event) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.gateway.opts.WriteWait))
	if err := s.conn.WriteJSON(e); err != nil {
		utils.Warn("session write error", map[string]any{"session_id": s.sub.ID(), "event": e.Type, "error": err.Error()})
		return err
	}
	return nil
}

// reply queues an ack for a request that carried an id. Never blocks.
func (s *session) reply(frame Frame, data any) {
	if frame.ID == nil {
		return
	}
	select {
	case s.replies <- broadcast.Event{Type: broadcast.EventAck, ReplyTo: frame.ID, Data: data}:
	default:
		utils.Warn("session: reply dropped", map[string]any{"session_id": s.sub.ID(), "request": frame.Event})
	}
}

func (s *session) dispatch(frame Frame) {
	svc := s.gateway.service

	switch frame.Event {
	case RequestLogin:
		var req helpers.LoginRequest
		if !s.decode(frame, &req) {
			s.reply(frame, helpers.LoginResult{Message: "invalid request payload"})
			return
		}
		res, err := svc.Login(req.UserID, req.Password)
		if err != nil {
			_, message := helpers.MapErrorToHTTP(err)
			s.reply(frame, helpers.LoginResult{Message: message})
			return
		}
		s.reply(frame, helpers.LoginResult{Success: res.Accepted, IsAdmin: res.IsAdmin})

	case RequestToggleAuction:
		var req helpers.ToggleAuctionRequest
		if !s.decode(frame, &req) || req.Active == nil {
			return
		}
		s.silent(frame, svc.ToggleAuction(req.UserID, req.ItemID, *req.Active))

	case RequestStartAll:
		if userID, ok := s.decodeUserID(frame); ok {
			s.silent(frame, svc.StartAllAuctions(userID))
		}

	case RequestStopAll:
		if userID, ok := s.decodeUserID(frame); ok {
			s.silent(frame, svc.StopAllAuctions(userID))
		}

	case RequestPlaceBid:
		var req helpers.PlaceBidRequest
		if !s.decode(frame, &req) {
			return
		}
		_, err := svc.PlaceBid(req.ItemID, req.Name, req.Password, req.Amount)
		s.silent(frame, err)

	case RequestUpdateCategory:
		var req helpers.UpdateCategoryRequest
		if !s.decode(frame, &req) {
			s.reply(frame, helpers.CategoryResult{Message: "invalid request payload"})
			return
		}
		if err := svc.UpdateCategory(req.UserID, req.Category, helpers.ParseCount(req.Count)); err != nil {
			_, message := helpers.MapErrorToHTTP(err)
			s.reply(frame, helpers.CategoryResult{Message: message})
			return
		}
		s.reply(frame, helpers.CategoryResult{Success: true})

	default:
		utils.Warn("session: unknown request", map[string]any{"session_id": s.sub.ID(), "request": frame.Event})
	}
}

func (s *session) decode(frame Frame, v any) bool {
	if err := json.Unmarshal(frame.Data, v); err != nil {
		utils.Warn("session: malformed payload", map[string]any{"session_id": s.sub.ID(), "request": frame.Event, "error": err.Error()})
		return false
	}
	return true
}

// decodeUserID accepts either a bare JSON string or {"userId": ...}
func (s *session) decodeUserID(frame Frame) (string, bool) {
	var userID string
	if err := json.Unmarshal(frame.Data, &userID); err == nil {
		return userID, true
	}
	var req helpers.AdminRequest
	if !s.decode(frame, &req) {
		return "", false
	}
	return req.UserID, true
}

// silent logs the outcome of a request that gets no reply
func (s *session) silent(frame Frame, err error) {
	if err != nil {
		utils.Debug("session: request not applied", map[string]any{"session_id": s.sub.ID(), "request": frame.Event, "error": err.Error()})
	}
}
