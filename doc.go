// Package graphpaper draws virtual graph paper in a window and plots
// points on it.
//
// # Overview
//
// A GraphPaper is a window covered by a grid of square cells. The origin
// sits at the center cell; data points are given in grid units, marked with
// a small red square and joined in marking order.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/gogpu/graphpaper"
//	    "github.com/gogpu/graphpaper/display"
//	    "github.com/gogpu/graphpaper/display/ebitenview"
//	)
//
//	func main() {
//	    err := ebitenview.Run(func(d *display.Display) error {
//	        gp, err := graphpaper.New(d, 700, 1300, "y = x^2 + 8x - 1")
//	        if err != nil {
//	            return err
//	        }
//	        if err := gp.SetPixelUnit(10, 10); err != nil {
//	            return err
//	        }
//	        for x := -12; x < 5; x++ {
//	            _ = gp.Mark(float64(x), float64(x*x+8*x-1))
//	        }
//	        _ = gp.JoinDots()
//	        if err := gp.WaitUntilClick(context.Background()); !graphpaper.IsClosedWindow(err) {
//	            return err
//	        }
//	        return nil
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The library is organized into:
//   - graphpaper: grid, axes, markers and joined points
//   - graphics: Window, shapes and the world/screen Transform
//   - surface: item-based rendering surfaces (gg rasterizer, recorder)
//   - display: the explicit display context and its backends
//
// # Coordinate System
//
// Paper pixels follow screen conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Grid units are Cartesian: a point (x, y) lands on pixel
// ((x+nW)*unitX, (nH-y)*unitY) where (nW, nH) is the origin cell.
package graphpaper
