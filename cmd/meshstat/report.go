package main

import (
	"fmt"
	"io"

	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/wallmesh"
	"github.com/gocarina/gocsv"
)

// Row is one level's meshing result.
type Row struct {
	Level     string  `csv:"level"`
	Width     int     `csv:"width"`
	Height    int     `csv:"height"`
	CellSize  float64 `csv:"cell_size"`
	WallCells int     `csv:"wall_cells"`
	Plates    int     `csv:"plates"`
	Colliders int     `csv:"colliders"`
	// Ratio is colliders per wall cell; lower is better.
	Ratio float64 `csv:"ratio"`
}

// buildRows meshes every level. A level that fails to mesh stops the report.
func buildRows(levels []*leveldata.Level) ([]Row, error) {
	rows := make([]Row, 0, len(levels))
	for _, level := range levels {
		_, stats, err := wallmesh.MeshWithStats(level.Name, level)
		if err != nil {
			return nil, fmt.Errorf("meshing %s: %w", level.Name, err)
		}
		row := Row{
			Level:     level.Name,
			Width:     level.GridWidth,
			Height:    level.GridHeight,
			CellSize:  level.CellSize,
			WallCells: stats.Cells,
			Plates:    stats.Plates,
			Colliders: stats.Rects,
		}
		if stats.Cells > 0 {
			row.Ratio = float64(stats.Rects) / float64(stats.Cells)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeReport(rows []Row, out io.Writer) error {
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
