// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/internal/gputest"
	"github.com/gogpu/gpuwindow/surface"
	"github.com/gogpu/gpuwindow/window"
)

type fixture struct {
	backend *gputest.Backend
	inst    backend.Instance
	win     *gputest.Window
	host    *gputest.Host
	slot    *surface.Slot
	bridge  *Bridge
}

// newFixture returns a connected bridge whose slot is still empty.
func newFixture(t *testing.T, w, h, scale float64) *fixture {
	t.Helper()
	f := &fixture{
		backend: gputest.NewBackend(),
		win:     gputest.NewWindow(w, h, scale),
		host:    &gputest.Host{},
		slot:    surface.NewSlot(),
	}
	inst, err := f.backend.CreateInstance()
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	f.inst = inst
	f.bridge = New(f.slot, f.host)
	f.bridge.Connect(f.win)
	t.Cleanup(f.slot.Close)
	return f
}

// populate runs initialization to completion.
func (f *fixture) populate(t *testing.T) {
	t.Helper()
	if err := <-surface.Start(context.Background(), f.inst, f.win, f.slot); err != nil {
		t.Fatalf("surface.Start() error = %v", err)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseUnconnected, "unconnected"},
		{PhaseConnected, "connected"},
		{PhaseClosing, "closing"},
		{PhaseDestroyed, "destroyed"},
		{Phase(9), "Phase(9)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int32(tt.p), got, tt.want)
		}
	}
}

func TestCallbacksBeforeConnect(t *testing.T) {
	b := gputest.NewBackend()
	inst, _ := b.CreateInstance()
	win := gputest.NewWindow(100, 100, 1)
	slot := surface.NewSlot()
	defer slot.Close()
	if err := <-surface.Start(context.Background(), inst, win, slot); err != nil {
		t.Fatalf("surface.Start() error = %v", err)
	}

	br := New(slot, nil)
	br.Size(window.Size{Width: 200, Height: 200})
	br.PreparePaint()
	br.Paint(window.Region{})
	br.MouseDown(window.MouseEvent{Button: window.MouseButtonLeft})
	br.Command(CommandExit)
	br.RequestClose()

	if br.Phase() != PhaseUnconnected {
		t.Errorf("Phase() = %v, want unconnected", br.Phase())
	}
	if br.Ready() {
		t.Error("Ready() before Connect")
	}
	if got := len(b.Passes()); got != 0 {
		t.Errorf("passes = %d, want 0", got)
	}
	if got := len(b.Configures()); got != 1 {
		t.Errorf("configures = %d, want 1", got)
	}
	if win.Invalidates() != 0 || win.Closes() != 0 {
		t.Error("window touched before Connect")
	}
}

func TestCallbacksBeforeReady(t *testing.T) {
	f := newFixture(t, 400, 300, 2)

	f.bridge.Size(window.Size{Width: 500, Height: 300})
	f.bridge.PreparePaint()
	f.bridge.Paint(window.Region{})
	f.bridge.MouseDown(window.MouseEvent{Button: window.MouseButtonLeft})

	if f.bridge.Phase() != PhaseConnected {
		t.Errorf("Phase() = %v, want connected", f.bridge.Phase())
	}
	if f.bridge.Ready() {
		t.Error("Ready() with an empty slot")
	}
	if got := f.backend.Configures(); len(got) != 0 {
		t.Errorf("configures = %v, want none", got)
	}
	if got := f.backend.Passes(); len(got) != 0 {
		t.Errorf("passes = %v, want none", got)
	}
	if f.win.Invalidates() != 1 {
		t.Errorf("invalidates = %d, want 1", f.win.Invalidates())
	}
	want := Stats{FramesSkipped: 2}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestResizeThenPaint(t *testing.T) {
	f := newFixture(t, 400, 300, 2)
	f.populate(t)
	if !f.bridge.Ready() {
		t.Fatal("Ready() = false after initialization")
	}

	f.win.Resize(500, 300)
	f.bridge.Size(window.Size{Width: 500, Height: 300})
	f.bridge.PreparePaint()
	f.bridge.Paint(window.Region{})

	cfgs := f.backend.Configures()
	if len(cfgs) != 2 {
		t.Fatalf("configures = %d, want 2", len(cfgs))
	}
	if cfgs[1].Width != 1000 || cfgs[1].Height != 600 {
		t.Errorf("reconfigured to %dx%d, want 1000x600", cfgs[1].Width, cfgs[1].Height)
	}
	passes := f.backend.Passes()
	if len(passes) != 1 {
		t.Fatalf("passes = %d, want 1", len(passes))
	}
	if passes[0].ViewWidth != 1000 || passes[0].ViewHeight != 600 {
		t.Errorf("rendered at %dx%d, want 1000x600", passes[0].ViewWidth, passes[0].ViewHeight)
	}
	want := Stats{FramesRendered: 1, ResizesApplied: 1}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestRepeatedSizeIsNoOp(t *testing.T) {
	f := newFixture(t, 800, 600, 1)
	f.populate(t)

	f.bridge.Size(window.Size{Width: 800, Height: 600})
	f.bridge.Size(window.Size{Width: 800, Height: 600})

	if got := len(f.backend.Configures()); got != 1 {
		t.Errorf("configures = %d, want 1", got)
	}
	if got := f.bridge.Stats().ResizesApplied; got != 0 {
		t.Errorf("ResizesApplied = %d, want 0", got)
	}
}

func TestResizeFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, 800, 600, 1)
	f.populate(t)

	f.win.Resize(0, 0)
	f.bridge.Size(window.Size{})
	f.bridge.Paint(window.Region{})

	// No frame is drawn at the old size while the window is empty.
	want := Stats{ResizeFailures: 1, RenderFailures: 1}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if got := len(f.backend.Passes()); got != 0 {
		t.Errorf("passes = %d, want 0", got)
	}
	if f.bridge.Phase() != PhaseConnected {
		t.Errorf("Phase() = %v, want connected", f.bridge.Phase())
	}

	// The window comes back at its old size; the next paint reconfigures
	// and draws.
	f.win.Resize(800, 600)
	f.bridge.Paint(window.Region{})

	want = Stats{FramesRendered: 1, RenderFailures: 1, ResizesApplied: 1, ResizeFailures: 1}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if got := len(f.backend.Configures()); got != 2 {
		t.Errorf("configures = %d, want 2", got)
	}
}

func TestResizeDuringInitialization(t *testing.T) {
	f := newFixture(t, 400, 300, 2)

	s, err := surface.Initialize(context.Background(), f.inst, f.win)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	// The window grows after the surface was sized but before the slot
	// is populated; the size callback finds an empty slot.
	f.win.Resize(512, 384)
	f.bridge.Size(window.Size{Width: 512, Height: 384})
	if err := f.slot.Populate(s); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}

	f.bridge.PreparePaint()
	f.bridge.Paint(window.Region{})

	passes := f.backend.Passes()
	if len(passes) != 1 {
		t.Fatalf("passes = %d, want 1", len(passes))
	}
	if passes[0].ViewWidth != 1024 || passes[0].ViewHeight != 768 {
		t.Errorf("rendered at %dx%d, want 1024x768", passes[0].ViewWidth, passes[0].ViewHeight)
	}
	want := Stats{FramesRendered: 1, ResizesApplied: 1}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestRenderWithoutResizeDoesNotReconfigure(t *testing.T) {
	f := newFixture(t, 800, 600, 1)
	f.populate(t)

	for range 3 {
		f.bridge.Paint(window.Region{})
	}
	if got := len(f.backend.Configures()); got != 1 {
		t.Errorf("configures = %d, want 1", got)
	}
	want := Stats{FramesRendered: 3}
	if got := f.bridge.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestPaintFailureIsRecovered(t *testing.T) {
	f := newFixture(t, 800, 600, 1)
	f.populate(t)

	f.backend.SetFailures(gputest.Failures{Acquire: backend.ErrSurfaceOutdated})
	f.bridge.Paint(window.Region{})

	f.backend.SetFailures(gputest.Failures{})
	f.bridge.Paint(window.Region{})

	st := f.bridge.Stats()
	if st.RenderFailures != 1 || st.FramesRendered != 1 {
		t.Errorf("Stats() = %+v, want one failure then one frame", st)
	}
	// The outdated surface was reconfigured before the retry.
	if got := len(f.backend.Configures()); got != 2 {
		t.Errorf("configures = %d, want 2", got)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	f := newFixture(t, 800, 600, 1)
	f.populate(t)

	f.backend.SetFailures(gputest.Failures{PanicOnAcquire: true})
	f.bridge.Paint(window.Region{})
	f.bridge.MouseDown(window.MouseEvent{Button: window.MouseButtonLeft})

	if got := f.bridge.Stats().RenderFailures; got != 2 {
		t.Errorf("RenderFailures = %d, want 2", got)
	}

	// The slot lock was released by the panicking call.
	f.backend.SetFailures(gputest.Failures{})
	f.bridge.Paint(window.Region{})
	if got := f.bridge.Stats().FramesRendered; got != 1 {
		t.Errorf("FramesRendered = %d, want 1", got)
	}
}

func TestMouse(t *testing.T) {
	f := newFixture(t, 100, 100, 1)
	f.populate(t)

	f.bridge.MouseMove(window.MouseEvent{Pos: window.Point{X: 3, Y: 4}})
	f.bridge.MouseDown(window.MouseEvent{Button: window.MouseButtonLeft})
	f.bridge.MouseUp(window.MouseEvent{Button: window.MouseButtonLeft})
	f.bridge.Wheel(window.MouseEvent{WheelDelta: window.Point{Y: 1}})

	if got := f.win.Cursors(); !reflect.DeepEqual(got, []window.Cursor{window.CursorArrow}) {
		t.Errorf("cursors = %v, want [arrow]", got)
	}
	if got := len(f.backend.Passes()); got != 1 {
		t.Errorf("passes = %d, want 1 (from mouse down)", got)
	}
}

func TestKeyDownNotHandled(t *testing.T) {
	f := newFixture(t, 100, 100, 1)
	if f.bridge.KeyDown(window.KeyEvent{}) {
		t.Error("KeyDown() = true, want false")
	}
	f.bridge.KeyUp(window.KeyEvent{})
	f.bridge.GotFocus()
	f.bridge.LostFocus()
	f.bridge.Timer(7)
}

func TestCloseAndDestroy(t *testing.T) {
	f := newFixture(t, 100, 100, 1)
	f.populate(t)

	f.bridge.RequestClose()
	if f.win.Closes() != 1 {
		t.Errorf("closes = %d, want 1", f.win.Closes())
	}
	if f.bridge.Phase() != PhaseClosing {
		t.Errorf("Phase() = %v, want closing", f.bridge.Phase())
	}
	if f.host.Quits() != 0 {
		t.Error("RequestClose quit the host")
	}

	f.bridge.Destroy()
	if f.bridge.Phase() != PhaseDestroyed {
		t.Errorf("Phase() = %v, want destroyed", f.bridge.Phase())
	}
	if f.host.Quits() != 1 {
		t.Errorf("quits = %d, want 1", f.host.Quits())
	}
	if got := f.backend.Destroyed(); len(got) != 0 {
		t.Errorf("Destroy released GPU resources: %v", got)
	}
}

func TestCommands(t *testing.T) {
	f := newFixture(t, 100, 100, 1)

	f.bridge.Command(CommandOpen)
	f.bridge.Command(CommandSave)
	f.bridge.Command(0x999)

	opens, saves := f.win.Opens(), f.win.Saves()
	if len(opens) != 1 || len(saves) != 1 {
		t.Fatalf("opens/saves = %d/%d, want 1/1", len(opens), len(saves))
	}
	if !reflect.DeepEqual(opens[0], DialogOptions()) {
		t.Errorf("open options = %+v, want %+v", opens[0], DialogOptions())
	}
	if !opens[0].ShowHidden {
		t.Error("ShowHidden = false")
	}
	if got := opens[0].AllowedTypes[0]; got.Name != "Go Files" {
		t.Errorf("first filter = %q, want Go Files", got.Name)
	}

	f.bridge.OpenFile(&window.FileInfo{Path: "/tmp/main.go"})
	f.bridge.SaveAs(nil)

	f.bridge.Command(CommandExit)
	if f.win.Closes() != 1 || f.host.Quits() != 1 {
		t.Errorf("closes/quits = %d/%d, want 1/1", f.win.Closes(), f.host.Quits())
	}
}

// handleOnly is a window without file dialogs.
type handleOnly struct{ window.Handle }

func TestCommandWithoutDialogs(t *testing.T) {
	win := gputest.NewWindow(100, 100, 1)
	br := New(surface.NewSlot(), nil)
	br.Connect(handleOnly{win})

	br.Command(CommandOpen)
	br.Command(CommandSave)
	br.Command(CommandExit)

	if len(win.Opens()) != 0 || len(win.Saves()) != 0 {
		t.Error("dialogs shown through a window that does not offer them")
	}
	if win.Closes() != 1 {
		t.Errorf("closes = %d, want 1", win.Closes())
	}
}

func TestInitializationFailureLeavesBridgeInert(t *testing.T) {
	f := newFixture(t, 100, 100, 1)
	f.backend.SetFailures(gputest.Failures{RequestDevice: errors.New("no device")})

	if err := <-surface.Start(context.Background(), f.inst, f.win, f.slot); err == nil {
		t.Fatal("surface.Start() succeeded")
	}
	f.bridge.Paint(window.Region{})

	if f.bridge.Ready() {
		t.Error("Ready() after failed initialization")
	}
	if got := f.bridge.Stats().FramesSkipped; got != 1 {
		t.Errorf("FramesSkipped = %d, want 1", got)
	}
}
