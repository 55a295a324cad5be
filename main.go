package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'hexagon' or 'obj'")
	objFile := flag.String("obj", "", "Wavefront OBJ file to render (with -scene obj)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: ray-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - spheres, cube and cylinder with reflection and refraction")
		fmt.Println("  hexagon - nested-group hexagon of spheres and cylinders")
		fmt.Println("  obj     - a Wavefront OBJ model (requires -obj)")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	var selectedScene *scene.Scene
	var err error

	switch *sceneType {
	case "default":
		selectedScene = scene.NewDefaultScene(*width, *height)
	case "hexagon":
		selectedScene = scene.NewHexagonScene(*width, *height)
	case "obj":
		if *objFile == "" {
			fmt.Println("Scene 'obj' requires -obj <file>")
			os.Exit(1)
		}
		selectedScene, err = scene.NewObjScene(*objFile, *width, *height)
		if err != nil {
			fmt.Printf("Error loading OBJ scene: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene(*width, *height)
		*sceneType = "default"
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d '%s' scene...\n", *width, *height, *sceneType)
	startTime := time.Now()
	img := selectedScene.Camera.Render(selectedScene.World)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	switch *format {
	case "ppm":
		err = img.WritePPM(file)
	default:
		err = png.Encode(file, img.ToImage())
	}
	if err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
