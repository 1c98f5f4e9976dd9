// Package web serves the professor's HTTP API: translation, lessons,
// manual behaviors, camera frames and the two websocket endpoints
// (voice relay and robot state stream).
package web

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/hub"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/realtime"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/translate"
)

// Version reported by /api/status.
const Version = "2.0.0"

// stateStreamTick is how often the pose stream pushes a snapshot.
const stateStreamTick = 100 * time.Millisecond

// Translator produces French translations with cultural facts.
type Translator interface {
	Translate(ctx context.Context, english string) (*translate.Translation, error)
	Model() string
}

// VisionAnalyzer identifies objects in uploaded frames.
type VisionAnalyzer interface {
	DescribeForTeaching(ctx context.Context, imageBase64 string) (string, error)
}

// Animator is the slice of the behavior manager the HTTP layer drives.
type Animator interface {
	PlayEmotion(emotion behaviors.Emotion, hold time.Duration) error
	StartDance(dance behaviors.Dance) error
	StopDance()
	Wave(ctx context.Context)
	NodYes(ctx context.Context)
	ShakeNo(ctx context.Context)
	Teach(ctx context.Context)
	StartSpeaking()
	StopSpeaking()
	Snapshot() behaviors.Snapshot
}

// Daemon reports robot daemon connectivity.
type Daemon interface {
	DaemonStatus(ctx context.Context) (string, error)
}

// VoiceRelay serves realtime voice sessions.
type VoiceRelay interface {
	Run(ctx context.Context, conn realtime.ClientConn) error
	Configured() bool
	ActiveSessions() int
}

// Deps are the services the server exposes.
type Deps struct {
	Translator Translator
	Vision     VisionAnalyzer
	Animator   Animator
	Daemon     Daemon
	Relay      VoiceRelay
	Frames     *realtime.FrameStore
}

// Server is the professor's HTTP server.
type Server struct {
	app  *fiber.App
	port string
	deps Deps

	stateHub *hub.Hub
	stop     chan struct{}

	// How long the blocking dance endpoints keep the dance running.
	danceHold    time.Duration
	behaviorHold time.Duration
}

// NewServer builds the fiber app with all routes registered.
func NewServer(port string, deps Deps) *Server {
	s := &Server{
		port:     port,
		deps:     deps,
		stateHub: hub.New("reachy-state"),
		stop:     make(chan struct{}),

		danceHold:    3 * time.Second,
		behaviorHold: 4 * time.Second,
	}

	app := fiber.New(fiber.Config{
		AppName:               "Le Professeur Bizarre",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	app.Static("/", "./web")

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Post("/translate", s.handleTranslate)

	api.Get("/lessons", s.handleListLessons)
	api.Get("/lessons/:id", s.handleGetLesson)
	api.Get("/lessons/:id/phrase/:index", s.handleGetPhrase)
	api.Post("/lessons/:id/phrase/:index/teach", s.handleTeachPhrase)

	api.Post("/reachy/wave", s.handleWave)
	api.Post("/reachy/nod", s.handleNod)
	api.Post("/reachy/shake", s.handleShake)
	api.Post("/reachy/dance", s.handleDance)
	api.Post("/behavior/:action", s.handleBehavior)

	api.Post("/camera/frame", s.handleCameraFrame)
	api.Post("/vision/analyze", s.handleVisionAnalyze)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/reachy-state", websocket.New(s.handleStateWS))
	app.Get("/ws/realtime", websocket.New(s.handleRealtimeWS))

	s.app = app
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start runs the pose stream and blocks serving HTTP.
func (s *Server) Start() error {
	go s.stateHub.Run()
	go s.streamState()

	log.Info("web server listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// Shutdown stops the pose stream and the HTTP server.
func (s *Server) Shutdown() error {
	close(s.stop)
	return s.app.Shutdown()
}

// streamState pushes the behavior snapshot to every state client on a
// fixed tick.
func (s *Server) streamState() {
	ticker := time.NewTicker(stateStreamTick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if s.stateHub.ClientCount() == 0 {
				continue
			}
			if err := s.stateHub.BroadcastJSON(s.deps.Animator.Snapshot()); err != nil {
				log.Warn("state broadcast failed", "error", err)
			}
		}
	}
}

// handleStateWS attaches one visualization client to the pose stream.
func (s *Server) handleStateWS(c *websocket.Conn) {
	client := hub.NewClient(s.stateHub, c)
	client.Run()
}

// handleRealtimeWS bridges one browser voice session to OpenAI.
func (s *Server) handleRealtimeWS(c *websocket.Conn) {
	if err := s.deps.Relay.Run(context.Background(), c); err != nil {
		log.Warn("realtime session failed", "error", err)
	}
}
