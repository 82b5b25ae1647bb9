package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/server/core"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = defaults)")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = config level dir)")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = config tick rate)")
	watch := flag.Bool("watch", false, "Reload levels when their .tmx file changes")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelsDir == "" {
		*levelsDir = config.Level.Dir
	}
	if *tickRate <= 0 {
		*tickRate = config.Physics.TickRate
	}

	server := core.NewServer(*tickRate, os.DirFS(*levelsDir), ".")
	if err := server.LoadLevels(); err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if *watch {
		watcher, err := assets.NewWatcher(*levelsDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *levelsDir, err)
		}
		defer watcher.Close()
		go func() {
			for {
				select {
				case file, ok := <-watcher.Events:
					if !ok {
						return
					}
					log.Printf("Level changed: %s", file)
					server.Reload(file)
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
	}()

	log.Printf("Starting level server on %s (%d levels, tick rate: %d/s, watch: %v)",
		*levelsDir, server.LevelCount(), *tickRate, *watch)
	server.Start()
}
