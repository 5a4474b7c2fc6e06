package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/meghashyamc/orbit2d/logger"
	"github.com/meghashyamc/orbit2d/loop"
	"github.com/meghashyamc/orbit2d/viewport"
)

var palette = []tcell.Color{
	tcell.ColorDarkGray,
	tcell.ColorBurlyWood,
	tcell.ColorDodgerBlue,
	tcell.ColorOrangeRed,
	tcell.ColorSandyBrown,
	tcell.ColorKhaki,
	tcell.ColorPaleTurquoise,
	tcell.ColorRoyalBlue,
	tcell.ColorRosyBrown,
}

var (
	starStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Host draws frames onto a terminal. Escape, q and Ctrl-C stop the loop.
type Host struct {
	screen  tcell.Screen
	view    viewport.Viewport
	logger  logger.Logger
	events  chan tcell.Event
	quit    chan struct{}
	done    chan struct{}
	running bool
}

func NewHost(view viewport.Viewport, log logger.Logger) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return newHost(screen, view, log)
}

func newHost(screen tcell.Screen, view viewport.Viewport, log logger.Logger) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	h := &Host{
		screen:  screen,
		view:    view,
		logger:  log,
		events:  make(chan tcell.Event, 64),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		running: true,
	}

	// PollEvent blocks, so events are pumped into a channel that Running
	// drains without blocking.
	go h.pumpEvents()

	return h, nil
}

// pumpEvents exits when the screen is finalised or Close is called, even if
// nobody is draining events any more.
func (h *Host) pumpEvents() {
	defer close(h.done)
	defer close(h.events)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.quit:
			return
		}
	}
}

// Running drains pending input and reports whether a stop key was seen.
func (h *Host) Running() bool {
	for h.running {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.running = false
				return false
			}
			h.handleEvent(ev)
		default:
			return h.running
		}
	}
	return h.running
}

func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			h.logger.Info("stop requested from terminal")
			h.running = false
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func (h *Host) Render(frame loop.Frame) error {
	h.screen.Clear()
	cols, rows := h.screen.Size()

	if col, row, ok := h.view.ToCell(frame.Star.Position, cols, rows); ok {
		h.screen.SetContent(col, row, '*', nil, starStyle)
	}
	for _, body := range frame.Bodies {
		col, row, ok := h.view.ToCell(body.Position, cols, rows)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(palette[colorIndex(body.AssetIndex)])
		h.screen.SetContent(col, row, 'o', nil, style)
	}

	status := fmt.Sprintf("day %.1f  dt %.0fs  frame %d  [q to quit]",
		frame.SimulatedTime/86400, frame.Timestep, frame.Index)
	h.drawText(0, 0, status)

	h.screen.Show()
	return nil
}

func (h *Host) drawText(x, y int, s string) {
	for i, r := range s {
		h.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}

// Close restores the terminal and waits for the event pump to exit. It is
// safe to call more than once.
func (h *Host) Close() {
	select {
	case <-h.quit:
		return
	default:
	}
	close(h.quit)
	h.screen.Fini()
	<-h.done
}

func colorIndex(assetIndex int) int {
	if assetIndex < 0 {
		assetIndex = -assetIndex
	}
	return assetIndex % len(palette)
}
