// Dance - choreography demo for the professor's animation system.
//
// Cycles through every dance and emotion against a live Reachy daemon
// so new step tables can be eyeballed on hardware.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscomoney/le-professeur-bizarre/internal/config"
	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/behaviors"
	"github.com/franciscomoney/le-professeur-bizarre/pkg/robot"
)

func main() {
	daemonURL := flag.String("daemon-url", config.DaemonURL(config.DefaultDaemonURL), "Reachy daemon URL")
	danceFor := flag.Duration("dance-for", 6*time.Second, "How long to run each dance")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *debug {
		log.Init("debug")
	} else {
		log.Init("info")
	}

	fmt.Println("💃 Le Professeur Bizarre - Dance Demo")
	fmt.Println("=====================================")
	fmt.Printf("Daemon: %s\n\n", *daemonURL)

	client := robot.NewClient(*daemonURL)

	fmt.Print("Checking connection... ")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	state, err := client.DaemonStatus(ctx)
	cancel()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ (daemon %s)\n\n", state)

	manager := behaviors.NewManager(client)
	manager.Start()

	// Reset the pose on Ctrl+C so the robot is not left mid-move.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n👋 Stopping, resetting position...")
		manager.Stop()
		recenter(client)
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	fmt.Println("🎵 Let's dance! (Ctrl+C to stop)")

	runLoop(manager, *danceFor)
}

// recenter sends one explicit neutral pose. Manager Stop leaves the
// robot uncommanded, so exiting mid-dance needs a final command.
func recenter(client *robot.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client.MoveHead(ctx, 0, 0, 0, 500*time.Millisecond)
	client.MoveAntennas(ctx, 0, 0, 300*time.Millisecond)
}

func runLoop(manager *behaviors.Manager, danceFor time.Duration) {
	for {
		for _, dance := range behaviors.Dances() {
			fmt.Printf("\n🎵 %s...\n", dance)
			if err := manager.StartDance(dance); err != nil {
				fmt.Printf("  skipped: %v\n", err)
				continue
			}
			time.Sleep(danceFor)
			manager.StopDance()
			time.Sleep(time.Second)
		}

		fmt.Println("\n🎭 Emotion round...")
		for _, emotion := range behaviors.Emotions() {
			fmt.Printf("  %s\n", emotion)
			if err := manager.PlayEmotion(emotion, 500*time.Millisecond); err != nil {
				fmt.Printf("  skipped: %v\n", err)
				continue
			}
			time.Sleep(4 * time.Second)
		}
	}
}
