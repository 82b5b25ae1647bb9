// Command meshstat meshes every level in a directory and writes a CSV row per
// level comparing wall cells to emitted colliders.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = defaults)")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = bundled levels)")
	outPath := flag.String("out", "", "Output CSV file (empty = stdout)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	levels, err := loadLevels(*levelsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })

	rows, err := buildRows(levels)
	if err != nil {
		log.Fatalf("%v", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := writeReport(rows, out); err != nil {
		log.Fatalf("%v", err)
	}
	if *outPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d levels to %s\n", len(rows), *outPath)
	}
}

func loadLevels(dir string) ([]*leveldata.Level, error) {
	if dir == "" {
		return assets.NewLevelLoader(assets.EmbeddedLevels(), "levels", nil).LoadLevels()
	}
	return assets.NewLevelLoader(os.DirFS(dir), ".", nil).LoadLevels()
}
