package viewer

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/stl"
)

// Part is one tab of the view window.
type Part struct {
	Name   string
	Model  *stl.Model
	Locals map[string]any
}

// Run opens a window with one tab per part and blocks until it is closed.
// Every slice received from updates replaces the displayed parts.
func Run(title string, parts []Part, updates <-chan []Part) {
	a := app.New()
	w := a.NewWindow(title)
	w.SetContent(newTabs(parts))

	if updates != nil {
		go func() {
			for next := range updates {
				fyne.Do(func() {
					w.SetContent(newTabs(next))
				})
			}
		}()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func newTabs(parts []Part) fyne.CanvasObject {
	tabs := container.NewAppTabs()
	for _, p := range parts {
		tabs.Append(container.NewTabItem(p.Name, partView(p)))
	}
	return tabs
}

func partView(p Part) fyne.CanvasObject {
	renderer := NewModelRenderer(p.Model)

	bold := fyne.TextStyle{Bold: true}
	stats := widget.NewLabel(strings.Join(analysis.AnalyzeModel(p.Model).Lines(), "\n"))
	locals := widget.NewLabel("none")
	if len(p.Locals) > 0 {
		locals.SetText(strings.Join(analysis.LocalLines(p.Locals), "\n"))
	}

	measurement := widget.NewLabel(selectionText(nil))
	measurement.TextStyle = bold
	renderer.SetOnSelect(func(points []geometry.Vector3) {
		measurement.SetText(selectionText(points))
	})
	clearButton := widget.NewButton("Clear Selection", renderer.ClearSelection)

	panel := container.NewVBox(
		widget.NewLabelWithStyle("Mesh", fyne.TextAlignLeading, bold),
		stats,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Locals", fyne.TextAlignLeading, bold),
		locals,
		widget.NewSeparator(),
		measurement,
		clearButton,
	)
	return container.NewBorder(nil, nil, nil, panel, renderer)
}

// selectionText describes the selected vertices and, once two are picked,
// the distance between them.
func selectionText(points []geometry.Vector3) string {
	switch len(points) {
	case 0:
		return "Tap two vertices to measure"
	case 1:
		return "Point 1: " + analysis.FormatVector(points[0])
	}
	a, b := points[0], points[1]
	delta := b.Sub(a)
	return fmt.Sprintf("Distance: %s\nΔ %s",
		analysis.FormatMeasurement(a.Distance(b), "mm"),
		analysis.FormatVector(delta))
}
