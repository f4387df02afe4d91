// Command graphpaper plots y = x^2 + 8x - 1 on virtual graph paper.
//
// By default the paper opens in a desktop window and the command waits
// for a click. With -headless the paper is rendered off screen and saved
// as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/graphpaper"
	"github.com/gogpu/graphpaper/display"
	"github.com/gogpu/graphpaper/display/ebitenview"
	"github.com/gogpu/graphpaper/surface"
)

func main() {
	var (
		width    = flag.Int("width", 1300, "paper width in pixels")
		height   = flag.Int("height", 700, "paper height in pixels")
		title    = flag.String("title", "y = x^2 + 8x - 1", "window title")
		unit     = flag.Int("unit", 10, "pixels per grid unit")
		headless = flag.Bool("headless", false, "render off screen instead of opening a window")
		output   = flag.String("output", "graphpaper.png", "PNG file written in headless mode")
		verbose  = flag.Bool("v", false, "log drawing activity to stderr")
	)
	flag.Parse()

	if *verbose {
		graphpaper.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	draw := func(d *display.Display) (*graphpaper.GraphPaper, error) {
		gp, err := graphpaper.New(d, *height, *width, *title)
		if err != nil {
			return nil, err
		}
		if err := gp.SetPixelUnit(*unit, *unit); err != nil {
			return nil, err
		}
		for x := -12; x < 5; x++ {
			if err := gp.Mark(float64(x), float64(x*x+8*x-1)); err != nil {
				return nil, err
			}
		}
		return gp, gp.JoinDots()
	}

	if *headless {
		if err := renderPNG(draw, *output); err != nil {
			log.Fatalf("graphpaper: %v", err)
		}
		log.Printf("Paper saved to %s (%dx%d)\n", *output, *width, *height)
		return
	}

	err := ebitenview.Run(func(d *display.Display) error {
		gp, err := draw(d)
		if err != nil {
			return err
		}
		if err := gp.WaitUntilClick(context.Background()); err != nil && !graphpaper.IsClosedWindow(err) {
			return err
		}
		return gp.Close()
	})
	if err != nil {
		log.Fatalf("graphpaper: %v", err)
	}
}

func renderPNG(draw func(*display.Display) (*graphpaper.GraphPaper, error), path string) error {
	d, err := display.New(display.WithSurfaceBackend("image"))
	if err != nil {
		return err
	}
	defer d.Close()

	gp, err := draw(d)
	if err != nil {
		return err
	}
	img, ok := gp.Window().Surface().(*surface.ImageSurface)
	if !ok {
		return fmt.Errorf("surface %T cannot be saved", gp.Window().Surface())
	}
	return img.SavePNG(path)
}
