// Package preview shows softras renders live in an Ebitengine window, spinning the mesh on a turntable.
package preview

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/softras"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit is returned from Viewer.Update when the viewer is closed with Escape.
var ErrQuit = errors.New("quit")

// Options configures a Viewer.
type Options struct {
	Render    *softras.RenderOptions
	SpinTime  float64 // Seconds per full turn of the turntable
	Easing    ease.TweenFunc
	Scale     int // Window scale factor
	Title     string
	Paused    bool
	DebugText bool
}

// DefaultOptions creates an instance of Options with some sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Render:    softras.DefaultRenderOptions(),
		SpinTime:  6,
		Easing:    ease.InOutQuad,
		Scale:     3,
		Title:     "softras preview",
		DebugText: true,
	}
}

// Viewer is an ebiten.Game that re-renders a mesh into a Sink every frame.
type Viewer struct {
	Mesh      softras.MeshSource
	Options   *Options
	Turntable *softras.Turntable
	Sink      *Sink
	Stats     softras.RenderStats
}

// NewViewer creates a new Viewer for the mesh given. Passing nil for options uses DefaultOptions().
func NewViewer(mesh softras.MeshSource, options *Options) *Viewer {

	if options == nil {
		options = DefaultOptions()
	}

	if options.Render == nil {
		options.Render = softras.DefaultRenderOptions()
	}

	viewer := &Viewer{
		Mesh:      mesh,
		Options:   options,
		Turntable: softras.NewTurntable(options.SpinTime, options.Easing),
		Sink:      NewSink(options.Render.Width, options.Render.Height),
	}

	viewer.Turntable.Base = options.Render.Transform

	return viewer

}

func (viewer *Viewer) Update() error {

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		viewer.Options.DebugText = !viewer.Options.DebugText
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		viewer.Options.Paused = !viewer.Options.Paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if viewer.Options.Render.Mode == softras.RenderModeWireframe {
			viewer.Options.Render.Mode = softras.RenderModeFilled
		} else {
			viewer.Options.Render.Mode = softras.RenderModeWireframe
		}
	}

	transform := viewer.Turntable.Transform()
	if !viewer.Options.Paused {
		transform = viewer.Turntable.Update(1 / float64(ebiten.TPS()))
	}

	viewer.Options.Render.Transform = transform

	stats, err := softras.Render(viewer.Mesh, viewer.Sink, viewer.Options.Render)
	if err != nil {
		return err
	}

	viewer.Stats = stats
	viewer.Sink.Flush()

	return nil

}

func (viewer *Viewer) Draw(screen *ebiten.Image) {

	screen.DrawImage(viewer.Sink.Image, nil)

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		path := "screenshot" + time.Now().Format("2006-01-02 15-04-05") + ".png"
		if err := softras.WriteImageFile(path, viewer.Sink.Snapshot()); err != nil {
			softras.Logger().Warn("preview: screenshot failed", "err", err)
		}
	}

	if viewer.Options.DebugText {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  faces %d  drawn %d  culled %d\n%v",
			viewer.Options.Render.Mode, viewer.Stats.Faces, viewer.Stats.Drawn, viewer.Stats.Culled, viewer.Stats.Elapsed.Round(time.Microsecond)))
		txt := "F1: Toggle text\nW: Wireframe\nSpace: Pause\nF12: Screenshot\nESC: Quit"
		text.Draw(screen, txt, basicfont.Face7x13, 2, viewer.Sink.Height()-60, color.RGBA{200, 200, 200, 255})
	}

}

func (viewer *Viewer) Layout(w, h int) (int, int) {
	return viewer.Sink.Width(), viewer.Sink.Height()
}

// Run opens a window and runs the Viewer until it's closed; closing with Escape isn't reported as an error.
func Run(viewer *Viewer) error {

	ebiten.SetWindowTitle(viewer.Options.Title)
	scale := max(viewer.Options.Scale, 1)
	ebiten.SetWindowSize(viewer.Sink.Width()*scale, viewer.Sink.Height()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}

	return nil

}
