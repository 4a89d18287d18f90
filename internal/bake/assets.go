package bake

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// assetsTemplate renders the generated Go module that embeds the baked
// files and exposes static references to them, so shipped content is one
// import away for the app.
var assetsTemplate = template.Must(template.New("assets").Parse(`// Code generated by jigsaw-bake. DO NOT EDIT.

package {{.Package}}

import "embed"

// FS holds the baked puzzle assets.
//
//go:embed background.png puzzle.json piece_*.png
var FS embed.FS

// Background is the pre-stretched board image.
const Background = "background.png"

// Metadata is the puzzle metadata file.
const Metadata = "puzzle.json"

// Pieces maps piece id to sprite filename, in row-major grid order.
var Pieces = map[string]string{
{{- range .Pieces}}
	"{{.ID}}": "{{.File}}",
{{- end}}
}
`))

const assetsFile = "assets.go"

// writeAssets emits the generated asset module for a completed run.
func writeAssets(dir, pkg string, res *Result) (string, error) {
	var buf bytes.Buffer
	err := assetsTemplate.Execute(&buf, struct {
		Package string
		Pieces  []PieceAsset
	}{Package: pkg, Pieces: res.Pieces})
	if err != nil {
		return "", fmt.Errorf("bake: rendering asset module: %w", err)
	}

	path := filepath.Join(dir, assetsFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("bake: writing asset module: %w", err)
	}
	return assetsFile, nil
}
