package graphpaper

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/graphpaper/display"
	"github.com/gogpu/graphpaper/graphics"
	"github.com/gogpu/graphpaper/internal/logging"
)

// State is the drawing stage of a GraphPaper.
type State uint8

const (
	// StateUninitialized is a blank paper.
	StateUninitialized State = iota

	// StateGridDrawn has grid lines but no origin.
	StateGridDrawn

	// StateOriginMarked has grid, axes and axis labels.
	StateOriginMarked

	// StatePlotting has at least one marked point.
	StatePlotting
)

var stateNames = [...]string{
	StateUninitialized: "uninitialized",
	StateGridDrawn:     "grid drawn",
	StateOriginMarked:  "origin marked",
	StatePlotting:      "plotting",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Point is a plotted data point in grid units.
type Point struct {
	X, Y float64
}

// Colors used on the paper.
var (
	majorLineColor = graphics.ColorRGB(0, 0, 255)
	axisColor      = graphics.ColorRGB(0, 0, 0)
	markColor      = graphics.ColorRGB(255, 0, 0)
	paperColor     = graphics.ColorRGB(255, 255, 255)
)

const (
	// majorEvery is the line index period of highlighted grid lines.
	majorEvery = 5

	labelSize  = 15
	labelInset = 15
)

// GraphPaper is a window showing a Cartesian grid with the origin at its
// center. Points are given in grid units and plotted in marking order.
//
// GraphPaper is not safe for concurrent use.
type GraphPaper struct {
	win    *graphics.Window
	height int
	width  int
	title  string

	unitX, unitY int
	subLineColor color.Color
	yMajorFromX  bool
	trailingJoin bool

	// nW and nH are the grid cell of the origin.
	nW, nH int

	background *graphics.Rectangle
	linesX     []*graphics.Line
	linesY     []*graphics.Line
	labels     []*graphics.Text
	markers    []*graphics.Rectangle
	joins      []*graphics.Line

	points []Point
	state  State
}

// New opens a width x height pixel window titled title on d and returns a
// blank paper.
func New(d *display.Display, height, width int, title string, opts ...Option) (*GraphPaper, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.unitX <= 0 || o.unitY <= 0 {
		return nil, &graphics.OptionError{Op: "New", Value: fmt.Sprintf("unit %dx%d", o.unitX, o.unitY), Err: ErrBadOption}
	}

	win, err := graphics.NewWindow(d, title, width, height, o.windowOptions...)
	if err != nil {
		return nil, err
	}
	g := &GraphPaper{
		win:          win,
		height:       height,
		width:        width,
		title:        title,
		unitX:        o.unitX,
		unitY:        o.unitY,
		subLineColor: o.subLineColor,
		yMajorFromX:  o.yMajorFromX,
		trailingJoin: o.trailingJoin,
		nW:           1,
		nH:           1,
	}
	if err := g.ClearScreen(); err != nil {
		_ = win.Close()
		return nil, err
	}
	return g, nil
}

func (g *GraphPaper) String() string {
	return fmt.Sprintf("Graphpaper Object(Height=%d,Width=%d,Title=%q)", g.height, g.width, g.title)
}

// Len returns the pixel area of the paper.
func (g *GraphPaper) Len() int { return g.height * g.width }

// Window returns the window the paper draws in.
func (g *GraphPaper) Window() *graphics.Window { return g.win }

// State returns the drawing stage.
func (g *GraphPaper) State() State { return g.state }

// PixelUnit returns the pixels per grid unit on each axis.
func (g *GraphPaper) PixelUnit() (x, y int) { return g.unitX, g.unitY }

// Origin returns the grid cell of the origin.
func (g *GraphPaper) Origin() (nW, nH int) { return g.nW, g.nH }

// Points returns the marked points in marking order.
func (g *GraphPaper) Points() []Point {
	return append([]Point(nil), g.points...)
}

// ClearScreen removes everything drawn on the paper, forgets the marked
// points and repaints a blank background.
func (g *GraphPaper) ClearScreen() error {
	if g.win.IsClosed() {
		return ErrClosedWindow
	}
	undrawAll(g.joins)
	undrawAll(g.markers)
	undrawAll(g.labels)
	undrawAll(g.linesY)
	undrawAll(g.linesX)
	if g.background != nil {
		_ = g.background.Undraw()
	}
	g.joins, g.markers, g.labels = nil, nil, nil
	g.linesX, g.linesY = nil, nil
	g.points = nil

	bg := graphics.NewRectangle(graphics.NewPoint(0, 0), graphics.NewPoint(float64(g.width), float64(g.height)))
	bg.SetOutline(paperColor)
	bg.SetFill(paperColor)
	if err := bg.Draw(g.win); err != nil {
		return err
	}
	g.background = bg
	g.state = StateUninitialized
	return nil
}

// DrawGrid draws one vertical line every X unit across the width and one
// horizontal line every Y unit down the height. Every fifth line is a
// major line drawn in blue at width 2. Drawing the grid again replaces
// the previous one together with any axis labels.
func (g *GraphPaper) DrawGrid() error {
	if g.win.IsClosed() {
		return ErrClosedWindow
	}
	undrawAll(g.labels)
	undrawAll(g.linesX)
	undrawAll(g.linesY)
	g.labels, g.linesX, g.linesY = nil, nil, nil

	for i := 0; i <= g.width; i += g.unitX {
		l := graphics.NewLine(graphics.NewPoint(float64(i), 0), graphics.NewPoint(float64(i), float64(g.height)))
		g.styleGridLine(l, (i/g.unitX)%majorEvery == 0)
		if err := l.Draw(g.win); err != nil {
			return err
		}
		g.linesX = append(g.linesX, l)
	}
	for i := 0; i <= g.height; i += g.unitY {
		major := (i/g.unitY)%majorEvery == 0
		if g.yMajorFromX {
			major = i%(majorEvery*g.unitX) == 0
		}
		l := graphics.NewLine(graphics.NewPoint(0, float64(i)), graphics.NewPoint(float64(g.width), float64(i)))
		g.styleGridLine(l, major)
		if err := l.Draw(g.win); err != nil {
			return err
		}
		g.linesY = append(g.linesY, l)
	}

	logging.Logger().Debug("graphpaper: grid drawn",
		"vertical", len(g.linesX), "horizontal", len(g.linesY), "unitX", g.unitX, "unitY", g.unitY)
	g.state = StateGridDrawn
	return nil
}

func (g *GraphPaper) styleGridLine(l *graphics.Line, major bool) {
	if major {
		l.SetColor(majorLineColor)
		_ = l.SetWidth(2)
		return
	}
	l.SetColor(g.subLineColor)
}

// MarkOrigin places the origin at the grid center, redraws the two axis
// lines in black at width 2 and labels the half-axes Y, Y', X' and X.
// The grid is drawn first when the paper is blank.
func (g *GraphPaper) MarkOrigin() error {
	if g.win.IsClosed() {
		return ErrClosedWindow
	}
	if len(g.linesX) == 0 || len(g.linesY) == 0 {
		if err := g.DrawGrid(); err != nil {
			return err
		}
	}
	g.nW = (g.width / g.unitX) / 2
	g.nH = (g.height / g.unitY) / 2

	for _, axis := range []*graphics.Line{g.linesX[g.nW], g.linesY[g.nH]} {
		_ = axis.Undraw()
		axis.SetColor(axisColor)
		_ = axis.SetWidth(2)
		if err := axis.Draw(g.win); err != nil {
			return err
		}
	}

	undrawAll(g.labels)
	g.labels = nil
	ox := float64(g.nW * g.unitX)
	oy := float64(g.nH * g.unitY)
	for _, lb := range []struct {
		x, y float64
		s    string
	}{
		{ox - labelInset, labelInset, "Y"},
		{ox - labelInset, float64(g.height - labelInset), "Y'"},
		{labelInset, oy + labelInset, "X'"},
		{float64(g.width - labelInset), oy + labelInset, "X"},
	} {
		t := graphics.NewText(graphics.NewPoint(lb.x, lb.y), lb.s)
		t.SetTextColor(axisColor)
		_ = t.SetSize(labelSize)
		if err := t.Draw(g.win); err != nil {
			return err
		}
		g.labels = append(g.labels, t)
	}

	logging.Logger().Debug("graphpaper: origin marked", "nW", g.nW, "nH", g.nH)
	g.state = StateOriginMarked
	return nil
}

// toPixels maps a point in grid units to window pixels.
func (g *GraphPaper) toPixels(x, y float64) (float64, float64) {
	return (x + float64(g.nW)) * float64(g.unitX), (-y + float64(g.nH)) * float64(g.unitY)
}

// Mark draws a small red marker at (x, y) grid units and appends the point
// to the plotted sequence. Points outside the paper are accepted.
func (g *GraphPaper) Mark(x, y float64) error {
	if g.win.IsClosed() {
		return ErrClosedWindow
	}
	px, py := g.toPixels(x, y)
	m := graphics.NewRectangle(graphics.NewPoint(px-0.75, py-0.75), graphics.NewPoint(px+0.5, py+0.5))
	m.SetOutline(markColor)
	m.SetFill(markColor)
	_ = m.SetWidth(3)
	if err := m.Draw(g.win); err != nil {
		return err
	}
	g.markers = append(g.markers, m)
	g.points = append(g.points, Point{X: x, Y: y})
	g.state = StatePlotting
	return nil
}

// JoinDots connects the marked points with red segments in marking order.
// A zero-length segment is drawn at the last point unless the paper was
// created WithoutTrailingSegment.
func (g *GraphPaper) JoinDots() error {
	if g.win.IsClosed() {
		return ErrClosedWindow
	}
	for i, p := range g.points {
		x1, y1 := g.toPixels(p.X, p.Y)
		x2, y2 := x1, y1
		if i < len(g.points)-1 {
			next := g.points[i+1]
			x2, y2 = g.toPixels(next.X, next.Y)
		} else if !g.trailingJoin {
			break
		}
		l := graphics.NewLine(graphics.NewPoint(x1, y1), graphics.NewPoint(x2, y2))
		_ = l.SetWidth(1)
		l.SetColor(markColor)
		if err := l.Draw(g.win); err != nil {
			return err
		}
		g.joins = append(g.joins, l)
	}
	return nil
}

// SetPixelUnit sets the pixels per grid unit, clears the paper, draws the
// grid and marks the origin. Both units must be positive.
func (g *GraphPaper) SetPixelUnit(x, y int) error {
	if x <= 0 || y <= 0 {
		return &graphics.OptionError{Op: "SetPixelUnit", Value: fmt.Sprintf("%dx%d", x, y), Err: ErrBadOption}
	}
	g.unitX, g.unitY = x, y
	if err := g.ClearScreen(); err != nil {
		return err
	}
	if err := g.DrawGrid(); err != nil {
		return err
	}
	return g.MarkOrigin()
}

// SetColorOfLines sets the color of the minor grid lines drawn by later
// calls to DrawGrid.
func (g *GraphPaper) SetColorOfLines(r, gr, b uint8) {
	g.subLineColor = graphics.ColorRGB(r, gr, b)
}

// Wait pauses for d.
func (g *GraphPaper) Wait(d time.Duration) {
	time.Sleep(d)
}

// WaitUntilClick blocks until the window is clicked and discards the
// click. It fails with ErrClosedWindow if the window is closed first.
func (g *GraphPaper) WaitUntilClick(ctx context.Context) error {
	_, err := g.win.GetMouse(ctx)
	return err
}

// Close closes the window. Close is idempotent.
func (g *GraphPaper) Close() error {
	return g.win.Close()
}

// IsClosedWindow reports whether err means the window was closed, the
// normal way for a user to end a wait.
func IsClosedWindow(err error) bool {
	return errors.Is(err, ErrClosedWindow)
}

func undrawAll[S graphics.Shape](shapes []S) {
	for _, s := range shapes {
		_ = s.Undraw()
	}
}
