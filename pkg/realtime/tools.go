package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
)

// BehaviorExecutor is the slice of the behavior manager the voice
// model's tools are allowed to drive.
type BehaviorExecutor interface {
	PlayEmotion(emotion behaviors.Emotion, hold time.Duration) error
	StartDance(dance behaviors.Dance) error
	StopDance()
	Wave(ctx context.Context)
	NodYes(ctx context.Context)
	ShakeNo(ctx context.Context)
}

// VisionTeacher answers the look_at_camera tool from the most recent
// browser frame.
type VisionTeacher interface {
	DescribeForTeaching(ctx context.Context, imageBase64 string) (string, error)
}

// Tool is a function definition advertised to the model.
type Tool struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// Tools returns the function definitions for one session.
func Tools() []Tool {
	return []Tool{
		{
			Type:        "function",
			Name:        "show_emotion",
			Description: "Express an emotion visually through robot movements",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"emotion": map[string]any{
						"type":        "string",
						"enum":        []string{"happy", "sad", "surprised", "thinking", "excited", "confused", "proud"},
						"description": "The emotion to express",
					},
				},
				"required": []string{"emotion"},
			},
		},
		{
			Type:        "function",
			Name:        "start_dance",
			Description: "Perform a dance. Use for celebrations, to entertain, or to express joy",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dance": map[string]any{
						"type":        "string",
						"enum":        []string{"french_waltz", "celebration", "thinking_groove", "bonjour_bob"},
						"description": "The dance to perform",
					},
				},
				"required": []string{"dance"},
			},
		},
		{Type: "function", Name: "wave", Description: "Wave hello or goodbye"},
		{Type: "function", Name: "nod", Description: "Nod head yes to agree or confirm"},
		{Type: "function", Name: "shake", Description: "Shake head no to disagree or deny"},
		{Type: "function", Name: "stop_dance", Description: "Stop the current dance"},
		{
			Type: "function",
			Name: "look_at_camera",
			Description: "Look through the camera to see what the user is showing. Use when user says 'look', " +
				"'what is this', 'can you see', 'show you something', etc. Returns description of what is seen with French translation.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "What to look for or ask about the image (e.g., 'What object is this?', 'What does this text say?')",
					},
				},
			},
		},
	}
}

// Dispatcher executes tool calls against the robot and camera.
type Dispatcher struct {
	Behaviors BehaviorExecutor
	Vision    VisionTeacher
	Frames    *FrameStore

	// DanceFor bounds the start_dance tool so the model cannot leave
	// the robot dancing forever.
	DanceFor time.Duration
}

// NewDispatcher wires tool execution with the default dance duration.
func NewDispatcher(b BehaviorExecutor, v VisionTeacher, f *FrameStore) *Dispatcher {
	return &Dispatcher{Behaviors: b, Vision: v, Frames: f, DanceFor: 3 * time.Second}
}

// Dispatch runs one tool call and returns the text result handed back
// to the model. Unknown tools and bad arguments come back as text too,
// so the conversation keeps going.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case "show_emotion":
		emotionName := stringArg(args, "emotion", "happy")
		emotion, err := behaviors.ParseEmotion(emotionName)
		if err != nil {
			return fmt.Sprintf("Unknown emotion: %s", emotionName)
		}
		if err := d.Behaviors.PlayEmotion(emotion, 0); err != nil {
			return fmt.Sprintf("Unknown emotion: %s", emotionName)
		}
		return fmt.Sprintf("Showing %s emotion", emotionName)

	case "start_dance":
		danceName := stringArg(args, "dance", "celebration")
		dance, err := behaviors.ParseDance(danceName)
		if err != nil {
			return fmt.Sprintf("Unknown dance: %s", danceName)
		}
		if err := d.Behaviors.StartDance(dance); err != nil {
			return fmt.Sprintf("Unknown dance: %s", danceName)
		}
		select {
		case <-time.After(d.DanceFor):
		case <-ctx.Done():
		}
		d.Behaviors.StopDance()
		return fmt.Sprintf("Performed %s dance", danceName)

	case "wave":
		d.Behaviors.Wave(ctx)
		return "Waved hello"

	case "nod":
		d.Behaviors.NodYes(ctx)
		return "Nodded yes"

	case "shake":
		d.Behaviors.ShakeNo(ctx)
		return "Shook head no"

	case "stop_dance":
		d.Behaviors.StopDance()
		return "Stopped dancing"

	case "look_at_camera":
		return d.lookAtCamera(ctx)
	}

	return fmt.Sprintf("Unknown tool: %s", name)
}

func (d *Dispatcher) lookAtCamera(ctx context.Context) string {
	_ = d.Behaviors.PlayEmotion(behaviors.EmotionThinking, 0)

	frame, ok := d.Frames.Latest()
	if !ok {
		_ = d.Behaviors.PlayEmotion(behaviors.EmotionConfused, 0)
		return "I can't see anything right now. Make sure the camera is enabled and show me something!"
	}

	result, err := d.Vision.DescribeForTeaching(ctx, frame)
	if err != nil {
		_ = d.Behaviors.PlayEmotion(behaviors.EmotionConfused, 0)
		return "I can't see anything right now. Make sure the camera is enabled and show me something!"
	}

	_ = d.Behaviors.PlayEmotion(behaviors.EmotionExcited, 0)
	return result
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
