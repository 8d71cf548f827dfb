package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"

	"pickup/config"
	"pickup/device"
	"pickup/game"
	"pickup/network"
)

func main() {
	serve := flag.Bool("serve", false, "serve remote sensor clients over websocket instead of running the terminal simulator")
	flag.Parse()

	cfg := config.Load()

	if *serve {
		runServer(cfg)
		return
	}
	runSimulator()
}

func runServer(cfg config.Config) {
	srv := network.NewServer(cfg.AllowedOrigin)
	log.Printf("listening on %s (ws endpoint: /ws)", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Handler()))
}

func runSimulator() {
	dev := device.NewTerminal()

	g := game.New(game.Device{
		Display: dev,
		Compass: dev,
		Accel:   dev,
		Buttons: dev,
		Clock:   device.NewClock(),
	}, nil)

	// Quitting the TUI powers the simulated device off; the game itself has
	// no exit path.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go g.Run(ctx)

	if _, err := tea.NewProgram(device.NewModel(dev)).Run(); err != nil {
		log.Fatal(err)
	}
}
