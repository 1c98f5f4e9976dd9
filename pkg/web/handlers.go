package web

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/lessons"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/translate"
)

// handleStatus reports app and daemon health.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	daemonStatus := "disconnected"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.deps.Daemon.DaemonStatus(ctx); err == nil {
		daemonStatus = "connected"
	}

	return c.JSON(fiber.Map{
		"app":                  "le_professeur_bizarre",
		"version":              Version,
		"model":                s.deps.Translator.Model(),
		"openai_configured":    s.deps.Relay.Configured(),
		"reachy_daemon":        daemonStatus,
		"active_conversations": s.deps.Relay.ActiveSessions(),
	})
}

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	Text string `json:"text"`
}

// handleTranslate translates English to French, animating the robot
// while it works. Translation failures degrade to a canned response so
// the endpoint never errors on upstream trouble.
func (s *Server) handleTranslate(c *fiber.Ctx) error {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text cannot be empty"})
	}

	_ = s.deps.Animator.PlayEmotion(behaviors.EmotionThinking, 0)

	result, err := s.deps.Translator.Translate(c.UserContext(), req.Text)
	if err != nil {
		log.Warn("translation failed, using fallback", "error", err)
		fallback := translate.Fallback(req.Text)
		fallback.CulturalFact = "Mon Dieu! " + fallback.CulturalFact
		_ = s.deps.Animator.PlayEmotion(behaviors.EmotionConfused, 0)
		return c.JSON(fallback)
	}

	_ = s.deps.Animator.PlayEmotion(behaviors.EmotionExcited, 0)
	return c.JSON(result)
}

// handleListLessons returns the lesson summaries.
func (s *Server) handleListLessons(c *fiber.Ctx) error {
	return c.JSON(lessons.List())
}

// handleGetLesson returns one lesson with all phrases.
func (s *Server) handleGetLesson(c *fiber.Ctx) error {
	lesson, err := lessons.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(lesson)
}

// handleGetPhrase returns one phrase and plays a short speaking
// animation while the UI reads it out.
func (s *Server) handleGetPhrase(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid phrase index"})
	}
	phrase, err := lessons.PhraseIn(c.Params("id"), index)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	go func() {
		s.deps.Animator.StartSpeaking()
		time.Sleep(2500 * time.Millisecond)
		s.deps.Animator.StopSpeaking()
	}()

	return c.JSON(phrase)
}

// handleTeachPhrase plays the full professorial teaching gesture for a
// phrase.
func (s *Server) handleTeachPhrase(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid phrase index"})
	}
	phrase, err := lessons.PhraseIn(c.Params("id"), index)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	go s.deps.Animator.Teach(context.Background())

	return c.JSON(struct {
		*lessons.PhraseAt
		Animation string `json:"animation"`
	}{phrase, "teaching"})
}

func (s *Server) handleWave(c *fiber.Ctx) error {
	s.deps.Animator.Wave(c.UserContext())
	return c.JSON(fiber.Map{"status": "waved"})
}

func (s *Server) handleNod(c *fiber.Ctx) error {
	s.deps.Animator.NodYes(c.UserContext())
	return c.JSON(fiber.Map{"status": "nodded"})
}

func (s *Server) handleShake(c *fiber.Ctx) error {
	s.deps.Animator.ShakeNo(c.UserContext())
	return c.JSON(fiber.Map{"status": "shook"})
}

// handleDance runs a short celebration and blocks until the robot is
// back at neutral, matching the gesture endpoints.
func (s *Server) handleDance(c *fiber.Ctx) error {
	if err := s.deps.Animator.StartDance(behaviors.DanceCelebration); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	time.Sleep(s.danceHold)
	s.deps.Animator.StopDance()
	return c.JSON(fiber.Map{"status": "danced"})
}

// handleBehavior triggers any behavior by name: wave, nod, shake,
// emotion_<name> or dance_<name>.
func (s *Server) handleBehavior(c *fiber.Ctx) error {
	action := c.Params("action")

	switch {
	case action == "wave":
		s.deps.Animator.Wave(c.UserContext())
	case action == "nod":
		s.deps.Animator.NodYes(c.UserContext())
	case action == "shake":
		s.deps.Animator.ShakeNo(c.UserContext())

	case strings.HasPrefix(action, "emotion_"):
		name := strings.TrimPrefix(action, "emotion_")
		emotion, err := behaviors.ParseEmotion(name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown emotion: " + name})
		}
		_ = s.deps.Animator.PlayEmotion(emotion, 0)

	case strings.HasPrefix(action, "dance_"):
		name := strings.TrimPrefix(action, "dance_")
		dance, err := behaviors.ParseDance(name)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown dance: " + name})
		}
		if err := s.deps.Animator.StartDance(dance); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown dance: " + name})
		}
		time.Sleep(s.behaviorHold)
		s.deps.Animator.StopDance()

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown action: " + action})
	}

	return c.JSON(fiber.Map{"status": "ok", "action": action})
}

// CameraFrame is a base64 frame uploaded by the browser.
type CameraFrame struct {
	Image string `json:"image"`
}

// handleCameraFrame stores the latest browser frame for the
// look_at_camera tool.
func (s *Server) handleCameraFrame(c *fiber.Ctx) error {
	var frame CameraFrame
	if err := c.BodyParser(&frame); err != nil || frame.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing image"})
	}
	s.deps.Frames.Put(frame.Image)
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleVisionAnalyze runs vision analysis directly on an uploaded
// frame.
func (s *Server) handleVisionAnalyze(c *fiber.Ctx) error {
	var frame CameraFrame
	if err := c.BodyParser(&frame); err != nil || frame.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing image"})
	}

	description, err := s.deps.Vision.DescribeForTeaching(c.UserContext(), frame.Image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"description": description})
}
