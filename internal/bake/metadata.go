package bake

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Metadata is the machine-readable description of a baked puzzle, written
// next to the sprites as puzzle.json.
type Metadata struct {
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	PieceSize  int          `json:"pieceSize"`
	Bleed      int          `json:"bleed"`
	Aspect     float64      `json:"aspect"`
	Background string       `json:"background"`
	Pieces     []PieceAsset `json:"pieces"`
}

const metadataFile = "puzzle.json"

// writeMetadata emits puzzle.json for a completed run.
func writeMetadata(dir string, res *Result) (string, error) {
	meta := Metadata{
		Rows:       res.Rows,
		Cols:       res.Cols,
		PieceSize:  res.PieceSize,
		Bleed:      res.Bleed,
		Aspect:     float64(res.Cols) / float64(res.Rows),
		Background: res.Background,
		Pieces:     res.Pieces,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("bake: encoding metadata: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, metadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("bake: writing metadata: %w", err)
	}
	return metadataFile, nil
}
