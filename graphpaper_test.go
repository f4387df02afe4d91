package graphpaper

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/graphpaper/display"
	"github.com/gogpu/graphpaper/graphics"
	"github.com/gogpu/graphpaper/surface"
)

func newTestPaper(t *testing.T, height, width int, opts ...Option) (*GraphPaper, *display.HeadlessHost) {
	t.Helper()
	hb := display.NewHeadless()
	d, err := display.New(display.WithBackend(hb), display.WithSurfaceBackend("recorder"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Close() })

	opts = append([]Option{WithWindowOptions(graphics.WithPollInterval(time.Millisecond))}, opts...)
	gp, err := New(d, height, width, "test", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return gp, hb.Last()
}

func recorder(gp *GraphPaper) *surface.Recorder {
	return gp.Window().Surface().(*surface.Recorder)
}

// itemsOf returns the live surface items of the given kind in paint order.
func itemsOf(gp *GraphPaper, kind surface.Kind) []surface.Item {
	var out []surface.Item
	for _, it := range recorder(gp).Items() {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	gp, host := newTestPaper(t, 700, 1300)

	if got, want := gp.String(), `Graphpaper Object(Height=700,Width=1300,Title="test")`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if gp.Len() != 700*1300 {
		t.Errorf("Len() = %d, want %d", gp.Len(), 700*1300)
	}
	if w, h := gp.Window().Width(), gp.Window().Height(); w != 1300 || h != 700 {
		t.Errorf("window = %dx%d, want 1300x700", w, h)
	}
	if host.Title() != "test" {
		t.Errorf("title = %q", host.Title())
	}
	if x, y := gp.PixelUnit(); x != 10 || y != 10 {
		t.Errorf("PixelUnit() = (%d, %d), want (10, 10)", x, y)
	}
	if gp.State() != StateUninitialized {
		t.Errorf("State() = %v, want %v", gp.State(), StateUninitialized)
	}

	// A blank paper is one white rectangle.
	rects := itemsOf(gp, surface.KindRectangle)
	if len(rects) != 1 {
		t.Fatalf("rectangles = %d, want 1", len(rects))
	}
	white := graphics.ColorRGB(255, 255, 255)
	if rects[0].P2 != surface.Pt(1300, 700) || rects[0].Style.Fill != white || rects[0].Style.Outline != white {
		t.Errorf("background = %+v", rects[0])
	}
}

func TestNewRejectsBadUnit(t *testing.T) {
	d, err := display.New(display.WithSurfaceBackend("recorder"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if _, err := New(d, 100, 100, "bad", WithPixelUnit(0, 10)); !errors.Is(err, ErrBadOption) {
		t.Errorf("New() error = %v, want ErrBadOption", err)
	}
	if d.Windows() != 0 {
		t.Errorf("window opened despite bad options")
	}
}

func TestDrawGrid(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 200)
	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if gp.State() != StateGridDrawn {
		t.Errorf("State() = %v, want %v", gp.State(), StateGridDrawn)
	}

	lines := itemsOf(gp, surface.KindLine)
	// 21 vertical (0..200) and 11 horizontal (0..100).
	if len(lines) != 21+11 {
		t.Fatalf("grid lines = %d, want 32", len(lines))
	}
	blue := graphics.ColorRGB(0, 0, 255)
	for i, it := range lines[:21] {
		if it.P1 != surface.Pt(float64(i*10), 0) || it.P2 != surface.Pt(float64(i*10), 100) {
			t.Errorf("vertical line %d = %v-%v", i, it.P1, it.P2)
		}
		major := i%5 == 0
		if got := it.Style.Fill == blue && it.Style.Width == 2; got != major {
			t.Errorf("vertical line %d major = %v, want %v", i, got, major)
		}
	}
	for i, it := range lines[21:] {
		if it.P1 != surface.Pt(0, float64(i*10)) || it.P2 != surface.Pt(200, float64(i*10)) {
			t.Errorf("horizontal line %d = %v-%v", i, it.P1, it.P2)
		}
		major := i%5 == 0
		if got := it.Style.Fill == blue && it.Style.Width == 2; got != major {
			t.Errorf("horizontal line %d major = %v, want %v", i, got, major)
		}
	}

	// Drawing again replaces the grid.
	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if n := len(itemsOf(gp, surface.KindLine)); n != 32 {
		t.Errorf("grid lines after second DrawGrid = %d, want 32", n)
	}
}

func majorRows(gp *GraphPaper) []float64 {
	blue := graphics.ColorRGB(0, 0, 255)
	var rows []float64
	for _, it := range itemsOf(gp, surface.KindLine) {
		if it.P1.X == 0 && it.P1.Y == it.P2.Y && it.Style.Fill == blue {
			rows = append(rows, it.P1.Y)
		}
	}
	return rows
}

func TestDrawGridMajorRowsFollowYUnit(t *testing.T) {
	gp, _ := newTestPaper(t, 120, 100, WithPixelUnit(10, 4))
	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 20, 40, 60, 80, 100, 120}, majorRows(gp)); diff != "" {
		t.Errorf("major rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawGridMajorRowsFromXUnit(t *testing.T) {
	// i % (5*unitX) with unitX=10 highlights rows at multiples of 50px.
	gp, _ := newTestPaper(t, 120, 100, WithPixelUnit(10, 4), WithYMajorFromXUnit())
	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 100}, majorRows(gp)); diff != "" {
		t.Errorf("major rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSubLineColor(t *testing.T) {
	gp, _ := newTestPaper(t, 20, 20)
	gp.SetColorOfLines(200, 100, 50)
	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	minor := itemsOf(gp, surface.KindLine)[1]
	if want := graphics.ColorRGB(200, 100, 50); minor.Style.Fill != want || minor.Style.Width != 1 {
		t.Errorf("minor line style = %+v, want color %v width 1", minor.Style, want)
	}
}

func TestSetPixelUnitPlacesOrigin(t *testing.T) {
	gp, _ := newTestPaper(t, 700, 1300)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatalf("SetPixelUnit() error = %v", err)
	}
	if gp.State() != StateOriginMarked {
		t.Errorf("State() = %v, want %v", gp.State(), StateOriginMarked)
	}
	if nW, nH := gp.Origin(); nW != 65 || nH != 35 {
		t.Errorf("Origin() = (%d, %d), want (65, 35)", nW, nH)
	}

	// The axes are redrawn last among the lines, in black at width 2.
	lines := itemsOf(gp, surface.KindLine)
	black := graphics.ColorRGB(0, 0, 0)
	xAxis, yAxis := lines[len(lines)-2], lines[len(lines)-1]
	if xAxis.P1 != surface.Pt(650, 0) || xAxis.Style.Fill != black || xAxis.Style.Width != 2 {
		t.Errorf("vertical axis = %+v", xAxis)
	}
	if yAxis.P1 != surface.Pt(0, 350) || yAxis.Style.Fill != black || yAxis.Style.Width != 2 {
		t.Errorf("horizontal axis = %+v", yAxis)
	}
	// 131 vertical + 71 horizontal, no duplicates.
	if len(lines) != 131+71 {
		t.Errorf("lines = %d, want %d", len(lines), 131+71)
	}

	type label struct {
		at   surface.Point
		text string
		size int
	}
	var got []label
	for _, it := range itemsOf(gp, surface.KindText) {
		got = append(got, label{it.P1, it.Style.Text, it.Style.Font.Size})
	}
	want := []label{
		{surface.Pt(635, 15), "Y", 15},
		{surface.Pt(635, 685), "Y'", 15},
		{surface.Pt(15, 365), "X'", 15},
		{surface.Pt(1285, 365), "X", 15},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(label{})); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	// A mark at the origin lands on the origin cell.
	if err := gp.Mark(0, 0); err != nil {
		t.Fatal(err)
	}
	rects := itemsOf(gp, surface.KindRectangle)
	m := rects[len(rects)-1]
	if m.P1 != surface.Pt(649.25, 349.25) || m.P2 != surface.Pt(650.5, 350.5) {
		t.Errorf("origin marker = %v-%v", m.P1, m.P2)
	}
}

func TestSetPixelUnitRejectsNonPositive(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	for _, u := range [][2]int{{0, 10}, {10, 0}, {-5, 5}} {
		err := gp.SetPixelUnit(u[0], u[1])
		if !errors.Is(err, ErrBadOption) {
			t.Errorf("SetPixelUnit(%d, %d) error = %v, want ErrBadOption", u[0], u[1], err)
		}
	}
	if x, y := gp.PixelUnit(); x != 10 || y != 10 {
		t.Errorf("PixelUnit() changed to (%d, %d)", x, y)
	}
}

func TestMark(t *testing.T) {
	gp, _ := newTestPaper(t, 700, 1300)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	// Out of range and duplicate points are accepted.
	for _, p := range []Point{{-20, -20}, {1, 2}, {1, 2}, {500, 500}} {
		if err := gp.Mark(p.X, p.Y); err != nil {
			t.Fatalf("Mark(%v) error = %v", p, err)
		}
	}
	if gp.State() != StatePlotting {
		t.Errorf("State() = %v, want %v", gp.State(), StatePlotting)
	}
	if diff := cmp.Diff([]Point{{-20, -20}, {1, 2}, {1, 2}, {500, 500}}, gp.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}

	rects := itemsOf(gp, surface.KindRectangle)
	m := rects[1] // after the background
	red := graphics.ColorRGB(255, 0, 0)
	if m.P1 != surface.Pt(449.25, 549.25) || m.Style.Fill != red || m.Style.Outline != red || m.Style.Width != 3 {
		t.Errorf("marker = %+v", m)
	}
}

func TestJoinDotsTwoPoints(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100, WithoutTrailingSegment())
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	before := len(itemsOf(gp, surface.KindLine))
	_ = gp.Mark(1, 1)
	_ = gp.Mark(-2, 3)
	if err := gp.JoinDots(); err != nil {
		t.Fatal(err)
	}

	lines := itemsOf(gp, surface.KindLine)[before:]
	if len(lines) != 1 {
		t.Fatalf("join segments = %d, want 1", len(lines))
	}
	red := graphics.ColorRGB(255, 0, 0)
	if lines[0].P1 != surface.Pt(60, 40) || lines[0].P2 != surface.Pt(30, 20) || lines[0].Style.Fill != red || lines[0].Style.Width != 1 {
		t.Errorf("segment = %+v, want (60,40)-(30,20) red width 1", lines[0])
	}
}

func TestJoinDotsTrailingSegment(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	before := len(itemsOf(gp, surface.KindLine))
	_ = gp.Mark(1, 1)
	_ = gp.Mark(-2, 3)
	if err := gp.JoinDots(); err != nil {
		t.Fatal(err)
	}

	lines := itemsOf(gp, surface.KindLine)[before:]
	if len(lines) != 2 {
		t.Fatalf("join segments = %d, want 2", len(lines))
	}
	if lines[0].P1 != surface.Pt(60, 40) || lines[0].P2 != surface.Pt(30, 20) {
		t.Errorf("first segment = %v-%v", lines[0].P1, lines[0].P2)
	}
	if lines[1].P1 != surface.Pt(30, 20) || lines[1].P2 != surface.Pt(30, 20) {
		t.Errorf("trailing segment = %v-%v, want zero length at (30,20)", lines[1].P1, lines[1].P2)
	}
}

func TestJoinDotsSinglePoint(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	before := len(itemsOf(gp, surface.KindLine))
	_ = gp.Mark(2, -1)
	if err := gp.JoinDots(); err != nil {
		t.Fatalf("JoinDots() error = %v", err)
	}
	lines := itemsOf(gp, surface.KindLine)[before:]
	if len(lines) != 1 || lines[0].P1 != lines[0].P2 || lines[0].P1 != surface.Pt(70, 60) {
		t.Errorf("segments = %+v, want one zero-length segment at (70,60)", lines)
	}
}

func TestJoinDotsEmpty(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	before := len(recorder(gp).Items())
	if err := gp.JoinDots(); err != nil {
		t.Fatal(err)
	}
	if n := len(recorder(gp).Items()); n != before {
		t.Errorf("JoinDots on no points drew %d items", n-before)
	}
}

func TestClearScreen(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	_ = gp.Mark(1, 1)
	_ = gp.JoinDots()

	if err := gp.ClearScreen(); err != nil {
		t.Fatal(err)
	}
	if gp.State() != StateUninitialized {
		t.Errorf("State() = %v, want %v", gp.State(), StateUninitialized)
	}
	if len(gp.Points()) != 0 {
		t.Errorf("Points() = %v, want none", gp.Points())
	}
	items := recorder(gp).Items()
	if len(items) != 1 || items[0].Kind != surface.KindRectangle {
		t.Errorf("items after ClearScreen = %v, want only the background", items)
	}
	if n := len(gp.Window().Items()); n != 1 {
		t.Errorf("window shapes = %d, want 1", n)
	}
}

func TestClosedPaper(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	if err := gp.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gp.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	ctx := context.Background()
	checks := map[string]error{
		"Mark":           gp.Mark(1, 1),
		"DrawGrid":       gp.DrawGrid(),
		"MarkOrigin":     gp.MarkOrigin(),
		"JoinDots":       gp.JoinDots(),
		"ClearScreen":    gp.ClearScreen(),
		"SetPixelUnit":   gp.SetPixelUnit(5, 5),
		"WaitUntilClick": gp.WaitUntilClick(ctx),
	}
	_, checks["GetMouse"] = gp.Window().GetMouse(ctx)
	for name, err := range checks {
		if !errors.Is(err, ErrClosedWindow) {
			t.Errorf("%s after Close error = %v, want ErrClosedWindow", name, err)
		}
		if !IsClosedWindow(err) {
			t.Errorf("IsClosedWindow(%s error) = false", name)
		}
	}
}

func TestWaitUntilClick(t *testing.T) {
	gp, host := newTestPaper(t, 100, 100)
	host.After(1, display.Click(10, 10))

	if err := gp.WaitUntilClick(context.Background()); err != nil {
		t.Fatalf("WaitUntilClick() error = %v", err)
	}
	if gp.Window().IsClosed() {
		t.Error("window closed by a click")
	}
}

func TestWaitUntilClickClosedByUser(t *testing.T) {
	gp, host := newTestPaper(t, 100, 100)
	host.After(1, display.CloseRequest())

	err := gp.WaitUntilClick(context.Background())
	if !IsClosedWindow(err) {
		t.Fatalf("WaitUntilClick() error = %v, want ErrClosedWindow", err)
	}
}

func TestWait(t *testing.T) {
	gp, _ := newTestPaper(t, 10, 10)
	start := time.Now()
	gp.Wait(5 * time.Millisecond)
	if time.Since(start) < 5*time.Millisecond {
		t.Error("Wait returned early")
	}
}

func TestImageSurfaceRendersPaper(t *testing.T) {
	d, err := display.New(display.WithSurfaceBackend("image"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	gp, err := New(d, 100, 100, "render")
	if err != nil {
		t.Fatal(err)
	}
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := gp.Mark(2, 2); err != nil {
		t.Fatal(err)
	}
	img := gp.Window().Surface().Snapshot()

	// The marker at grid (2, 2) covers pixel (70, 30).
	if c := img.RGBAAt(70, 30); c.R < 200 || c.G > 80 || c.B > 80 {
		t.Errorf("marker pixel = %v, want red", c)
	}
	// Cell interiors stay white.
	if c := img.RGBAAt(15, 15); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("cell pixel = %v, want white", c)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateUninitialized: "uninitialized",
		StateGridDrawn:     "grid drawn",
		StateOriginMarked:  "origin marked",
		StatePlotting:      "plotting",
		State(9):           "State(9)",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
	if !strings.Contains(ErrClosedWindow.Error(), "closed") {
		t.Errorf("ErrClosedWindow = %q", ErrClosedWindow)
	}
}

func TestDrawGridAfterOriginRemovesLabels(t *testing.T) {
	gp, _ := newTestPaper(t, 100, 100)
	if err := gp.SetPixelUnit(10, 10); err != nil {
		t.Fatal(err)
	}
	if n := len(itemsOf(gp, surface.KindText)); n != 4 {
		t.Fatalf("labels after SetPixelUnit = %d, want 4", n)
	}

	if err := gp.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if n := len(itemsOf(gp, surface.KindText)); n != 0 {
		t.Errorf("labels after DrawGrid = %d, want 0", n)
	}
	if n := len(itemsOf(gp, surface.KindLine)); n != 11+11 {
		t.Errorf("lines after DrawGrid = %d, want 22", n)
	}
	if gp.State() != StateGridDrawn {
		t.Errorf("State() = %v, want %v", gp.State(), StateGridDrawn)
	}

	if err := gp.MarkOrigin(); err != nil {
		t.Fatal(err)
	}
	if n := len(itemsOf(gp, surface.KindText)); n != 4 {
		t.Errorf("labels after MarkOrigin = %d, want 4", n)
	}
}
