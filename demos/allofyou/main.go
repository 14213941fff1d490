// All of You: a face mosaic mirror.
//
// Thirty-three panels cut from a face image sit on their face anchors and
// follow the head pose. Without a tracker the pointer stands in for the face.
// Press Space to spread the panels into a mind map around the nose; drag
// panels there and watch them spring back. Scroll to zoom. Click in face
// mode to save a snapshot.
//
// Flags:
//
//	-config tuning.yaml   override animation constants
//	-script steps.json    run an automated test script
//	-texture face.png     map a face image onto the panels
//	-seed N               mind-map layout seed
//	-shots DIR            snapshot directory
//	-debug                per-frame stats on stderr
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/phanxgames/allofyou"
	"github.com/phanxgames/allofyou/view"
)

const (
	windowTitle = "All of You"
	screenW     = 1280
	screenH     = 720
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	scriptPath := flag.String("script", "", "JSON test script")
	texturePath := flag.String("texture", "", "face image (PNG or JPEG)")
	seed := flag.Uint64("seed", 1, "layout seed")
	shots := flag.String("shots", "screenshots", "snapshot directory")
	debug := flag.Bool("debug", false, "log per-frame stats")
	showFPS := flag.Bool("fps", false, "show FPS overlay")
	flag.Parse()

	tun := allofyou.DefaultTuning()
	if *configPath != "" {
		t, err := allofyou.LoadTuning(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tun = t
	}

	session, err := allofyou.NewSession(allofyou.SessionConfig{
		Tuning:        &tun,
		Seed:          *seed,
		Viewport:      allofyou.Rect{Width: screenW, Height: screenH},
		ScreenshotDir: *shots,
	})
	if err != nil {
		log.Fatal(err)
	}
	session.SetDebugMode(*debug)

	var tex image.Image
	if *texturePath != "" {
		tex, err = loadImage(*texturePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	cfg := view.RunConfig{
		Title:   windowTitle,
		Width:   screenW,
		Height:  screenH,
		ShowFPS: *showFPS,
		Texture: tex,
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := allofyou.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Script = runner
		cfg.ExitWhenDone = true
	}

	if err := view.Run(session, cfg); err != nil {
		log.Fatal(err)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
