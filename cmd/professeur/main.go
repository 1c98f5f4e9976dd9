// Le Professeur Bizarre - eccentric Franco-American robot teacher.
// Serves the web app, translates with cultural facts, holds realtime
// voice lessons and animates a Reachy Mini while doing it.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscomoney/le-professeur-bizarre/internal/config"
	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/detection"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/realtime"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/robot"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/translate"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/vision"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/web"
)

func main() {
	cfg := parseFlags()
	log.Init(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	robotClient := robot.NewClient(cfg.DaemonURL)
	manager := behaviors.NewManager(robotClient)
	manager.Start()
	defer manager.Stop()

	// Local camera face tracking is optional; the browser frame path
	// works without it.
	var camera *detection.CameraSource
	if cfg.CameraDevice != "" {
		var err error
		camera, err = detection.NewCameraSource(cfg.CameraDevice, detection.DefaultConfig())
		if err != nil {
			log.Warn("camera unavailable, face tracking disabled", "device", cfg.CameraDevice, "error", err)
		} else {
			defer camera.Close()
			manager.EnableFaceTracking(camera)
			log.Info("face tracking enabled", "device", cfg.CameraDevice)
		}
	}

	translator := translate.NewTranslator(cfg.OpenRouterKey, cfg.NemotronModel)
	analyzer := vision.NewAnalyzer(cfg.OpenRouterKey, cfg.VisionModel)
	frames := realtime.NewFrameStore()
	dispatcher := realtime.NewDispatcher(manager, analyzer, frames)
	relay := realtime.NewRelay(cfg.OpenAIKey, cfg.RealtimeModel, dispatcher, manager)

	server := web.NewServer(cfg.Port, web.Deps{
		Translator: translator,
		Vision:     analyzer,
		Animator:   manager,
		Daemon:     robotClient,
		Relay:      relay,
		Frames:     frames,
	})

	greet(robotClient, manager, cfg.DaemonURL)
	logStartup(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case <-ctx.Done():
		log.Info("shutting down, au revoir")
	case err := <-errCh:
		log.Error("web server failed", "error", err)
	}

	if err := server.Shutdown(); err != nil {
		log.Warn("server shutdown failed", "error", err)
	}
}

// greet waves and plays the happy emotion when the daemon is
// reachable, so the robot visibly comes alive on boot.
func greet(client *robot.Client, manager *behaviors.Manager, daemonURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.DaemonStatus(ctx); err != nil {
		log.Warn("could not reach robot daemon", "url", daemonURL, "error", err)
		return
	}
	log.Info("connected to robot daemon", "url", daemonURL)

	go func() {
		manager.Wave(context.Background())
		_ = manager.PlayEmotion(behaviors.EmotionHappy, 0)
	}()
}

func logStartup(cfg config.Config) {
	log.Info("le professeur bizarre ready",
		"port", cfg.Port,
		"daemon", cfg.DaemonURL,
		"translator", cfg.OpenRouterKey != "",
		"voice", cfg.OpenAIKey != "",
	)
}

// parseFlags loads configuration from the environment, then lets
// flags override it.
func parseFlags() config.Config {
	cfg := config.Load()

	port := flag.String("port", "", "Web server port (overrides PORT env var)")
	daemonURL := flag.String("daemon-url", "", "Reachy daemon URL (overrides DAEMON_URL env var)")
	cameraDevice := flag.String("camera", "", "Local camera device for face tracking (overrides CAMERA_DEVICE env var)")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *port != "" {
		cfg.Port = *port
	}
	if *daemonURL != "" {
		cfg.DaemonURL = *daemonURL
	}
	if *cameraDevice != "" {
		cfg.CameraDevice = *cameraDevice
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	return cfg
}
