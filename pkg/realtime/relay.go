// Package realtime relays voice audio between the browser and the
// OpenAI Realtime API, executing the professor's robot tools in the
// middle. Browser <-> this server <-> OpenAI.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
)

// DefaultURL is the OpenAI Realtime websocket endpoint.
const DefaultURL = "wss://api.openai.com/v1/realtime"

const instructions = `You are Le Professeur Bizarre, a friendly robot language teacher with VISION. You teach French to English speakers.

IMPORTANT RULES:
1. Keep responses SHORT (1-3 sentences max for voice conversation)
2. Wait for the user to speak before teaching
3. Don't ramble or monologue - this is a conversation
4. Speak mostly in English, with French phrases when teaching

Your personality:
- Friendly and encouraging
- Occasional French exclamations ("Magnifique!", "Tres bien!")
- Share one fun cultural fact at a time
- Be patient with beginners

Your abilities (use sparingly and naturally):
- show_emotion: happy, excited, thinking, proud
- start_dance: celebration (only when student does really well)
- wave: for greetings
- nod: to confirm
- shake: to gently correct
- look_at_camera: SEE what the user is showing you! Use this when they say "look", "what is this", "can you see", etc.

VISION: You can SEE through the camera! When users show you objects:
1. Use look_at_camera tool to see what they're showing
2. Tell them the French word for it
3. Give pronunciation
4. Share a cultural fact

Example: User says "What's this?" -> Use look_at_camera -> "Ah! Une pomme! That's 'ewn POM'. In France, we have over 400 apple varieties!"

CRITICAL: Your FIRST message should ONLY be:
"Bonjour! I'm Reachy, your French teacher. I can see through my camera - show me objects and I'll teach you the French words! What would you like to learn?"

Then WAIT for the user to respond.`

// Speaker drives the mouth-moving animation while the model talks.
type Speaker interface {
	StartSpeaking()
	StopSpeaking()
}

// ClientConn is the browser leg of the relay. Both gorilla and fiber
// websocket connections satisfy it.
type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

// Relay bridges one browser websocket to one OpenAI Realtime session.
type Relay struct {
	apiKey     string
	model      string
	url        string
	dispatcher *Dispatcher
	speaker    Speaker

	active atomic.Int64
}

// NewRelay creates a relay for the given model.
func NewRelay(apiKey, model string, dispatcher *Dispatcher, speaker Speaker) *Relay {
	return &Relay{
		apiKey:     apiKey,
		model:      model,
		url:        DefaultURL,
		dispatcher: dispatcher,
		speaker:    speaker,
	}
}

// WithURL overrides the upstream endpoint (tests point it at a local
// websocket server).
func (r *Relay) WithURL(url string) *Relay {
	r.url = url
	return r
}

// Configured reports whether an API key is available.
func (r *Relay) Configured() bool {
	return r.apiKey != ""
}

// ActiveSessions returns the number of relays currently running.
func (r *Relay) ActiveSessions() int {
	return int(r.active.Load())
}

type browserEvent struct {
	Type  string `json:"type"`
	Audio string `json:"audio,omitempty"`
	Text  string `json:"text,omitempty"`
}

type upstreamEvent struct {
	Type       string `json:"type"`
	Delta      string `json:"delta"`
	Transcript string `json:"transcript"`
	Name       string `json:"name"`
	CallID     string `json:"call_id"`
	Arguments  string `json:"arguments"`
	Error      struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Run serves one conversation until either side disconnects. It blocks
// for the lifetime of the session.
func (r *Relay) Run(ctx context.Context, browser ClientConn) error {
	if !r.Configured() {
		_ = browser.WriteJSON(map[string]string{
			"type":    "error",
			"message": "OpenAI API key not configured. Set OPENAI_API_KEY environment variable.",
		})
		return fmt.Errorf("realtime relay: no API key configured")
	}

	sessionID := uuid.NewString()
	logger := log.With("session", sessionID[:8])

	header := http.Header{}
	header.Set("Authorization", "Bearer "+r.apiKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	upstream, _, err := dialer.DialContext(ctx, r.url+"?model="+r.model, header)
	if err != nil {
		_ = browser.WriteJSON(map[string]string{"type": "error", "message": "Could not reach the voice service."})
		return fmt.Errorf("dial realtime API: %w", err)
	}
	defer upstream.Close()

	r.active.Add(1)
	defer r.active.Add(-1)
	logger.Info("realtime session started")

	session := &relaySession{
		upstream:   upstream,
		browser:    browser,
		dispatcher: r.dispatcher,
		speaker:    r.speaker,
		logger:     logger,
	}
	defer session.stopSpeakingIfNeeded()

	if err := session.configure(); err != nil {
		return fmt.Errorf("configure session: %w", err)
	}
	if err := browser.WriteJSON(map[string]string{
		"type":    "connected",
		"message": "Ready! Click the button and say hello.",
	}); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		session.relayToUpstream(ctx)
		// Unblock the upstream read loop when the browser goes away.
		upstream.Close()
	}()

	session.relayToBrowser(ctx)
	cancel()
	// Unblock the browser read loop if the upstream went away first.
	_ = browser.Close()
	wg.Wait()
	logger.Info("realtime session ended")
	return nil
}

type relaySession struct {
	upstream   *websocket.Conn
	upstreamMu sync.Mutex
	browser    ClientConn
	dispatcher *Dispatcher
	speaker    Speaker
	logger     *slog.Logger

	speaking bool
}

func (s *relaySession) sendUpstream(v interface{}) error {
	s.upstreamMu.Lock()
	defer s.upstreamMu.Unlock()
	return s.upstream.WriteJSON(v)
}

func (s *relaySession) configure() error {
	return s.sendUpstream(map[string]any{
		"type": "session.update",
		"session": map[string]any{
			"modalities":          []string{"text", "audio"},
			"instructions":        instructions,
			"voice":               "alloy",
			"input_audio_format":  "pcm16",
			"output_audio_format": "pcm16",
			"input_audio_transcription": map[string]any{
				"model": "whisper-1",
			},
			"turn_detection": map[string]any{
				"type":                "server_vad",
				"threshold":           0.6,
				"prefix_padding_ms":   300,
				"silence_duration_ms": 700,
			},
			"tools":       Tools(),
			"tool_choice": "auto",
		},
	})
}

// relayToUpstream forwards browser audio and text to OpenAI.
func (s *relaySession) relayToUpstream(ctx context.Context) {
	for {
		_, raw, err := s.browser.ReadMessage()
		if err != nil {
			return
		}

		var msg browserEvent
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "audio":
			if err := s.sendUpstream(map[string]string{
				"type":  "input_audio_buffer.append",
				"audio": msg.Audio,
			}); err != nil {
				return
			}
		case "text":
			if err := s.sendUpstream(map[string]any{
				"type": "conversation.item.create",
				"item": map[string]any{
					"type": "message",
					"role": "user",
					"content": []map[string]string{
						{"type": "input_text", "text": msg.Text},
					},
				},
			}); err != nil {
				return
			}
			if err := s.sendUpstream(map[string]string{"type": "response.create"}); err != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// relayToBrowser forwards model events to the browser and drives the
// robot along the way.
func (s *relaySession) relayToBrowser(ctx context.Context) {
	for {
		_, raw, err := s.upstream.ReadMessage()
		if err != nil {
			return
		}

		var event upstreamEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			continue
		}

		switch event.Type {
		case "response.audio.delta":
			if !s.speaking {
				s.speaking = true
				s.speaker.StartSpeaking()
				_ = s.browser.WriteJSON(map[string]string{"type": "audio_start"})
			}
			_ = s.browser.WriteJSON(map[string]string{"type": "audio", "audio": event.Delta})

		case "response.audio.done":
			s.speaking = false
			s.speaker.StopSpeaking()
			_ = s.browser.WriteJSON(map[string]string{"type": "audio_done"})

		case "response.audio_transcript.delta":
			_ = s.browser.WriteJSON(map[string]string{
				"type":  "transcript",
				"role":  "assistant",
				"delta": event.Delta,
			})

		case "conversation.item.input_audio_transcription.completed":
			_ = s.browser.WriteJSON(map[string]string{
				"type": "transcript",
				"role": "user",
				"text": event.Transcript,
			})

		case "response.function_call_arguments.done":
			s.handleToolCall(ctx, event)

		case "error":
			// "no active response" follows every response.cancel and
			// is noise, not a failure.
			if strings.Contains(strings.ToLower(event.Error.Message), "no active response") {
				s.logger.Debug("suppressed realtime error", "message", event.Error.Message)
				continue
			}
			_ = s.browser.WriteJSON(map[string]string{"type": "error", "message": event.Error.Message})
		}
	}
}

func (s *relaySession) handleToolCall(ctx context.Context, event upstreamEvent) {
	var args map[string]any
	if err := json.Unmarshal([]byte(event.Arguments), &args); err != nil {
		args = map[string]any{}
	}

	s.logger.Info("tool call", "tool", event.Name)
	result := s.dispatcher.Dispatch(ctx, event.Name, args)

	// The model may still be mid-response when the tool finishes.
	// Cancel it so the tool result starts a fresh one.
	_ = s.sendUpstream(map[string]string{"type": "response.cancel"})
	time.Sleep(100 * time.Millisecond)

	_ = s.sendUpstream(map[string]any{
		"type": "conversation.item.create",
		"item": map[string]any{
			"type":    "function_call_output",
			"call_id": event.CallID,
			"output":  result,
		},
	})
	_ = s.sendUpstream(map[string]string{"type": "response.create"})

	_ = s.browser.WriteJSON(map[string]any{
		"type":   "tool_call",
		"name":   event.Name,
		"result": result,
	})
}

func (s *relaySession) stopSpeakingIfNeeded() {
	if s.speaking {
		s.speaking = false
		s.speaker.StopSpeaking()
	}
}
