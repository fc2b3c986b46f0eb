// Package ui builds the ebitenui screens drawn over the game.
package ui

import (
	"image/color"

	"github.com/automoto/ferrisdive/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Overlay is the full-screen card shown when a dive ends. It renders
// into its own canvas so the whole card can fade in.
type Overlay struct {
	UI *ebitenui.UI

	canvas    *ebiten.Image
	titleFace text.Face
	hintFace  text.Face
	op        ebiten.DrawImageOptions
}

// NewOverlay creates a hidden overlay sized to the logical screen.
func NewOverlay(width, height int) *Overlay {
	return &Overlay{
		canvas:    ebiten.NewImage(width, height),
		titleFace: text.NewGoXFace(fonts.Title.Get()),
		hintFace:  text.NewGoXFace(fonts.Hint.Get()),
	}
}

// Card describes what the overlay shows.
type Card struct {
	Title      string
	TitleColor color.Color
	Background color.Color
	Hint       string
	HintColor  color.Color
}

// Show replaces the overlay content with card.
func (o *Overlay) Show(card Card) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(card.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(card.Title, &o.titleFace, &widget.LabelColor{Idle: card.TitleColor}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	))
	if card.Hint != "" {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(card.Hint, &o.hintFace, &widget.LabelColor{Idle: card.HintColor}),
			widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			)),
		))
	}

	root.AddChild(content)
	o.UI = &ebitenui.UI{Container: root}
}

// Hide drops the current card.
func (o *Overlay) Hide() {
	o.UI = nil
}

func (o *Overlay) Visible() bool {
	return o.UI != nil
}

func (o *Overlay) Update() {
	if o.UI != nil {
		o.UI.Update()
	}
}

// Draw composites the card at the given opacity.
func (o *Overlay) Draw(screen *ebiten.Image, alpha float32) {
	if !o.Visible() || alpha <= 0 {
		return
	}
	o.canvas.Clear()
	o.UI.Draw(o.canvas)

	o.op.ColorScale.Reset()
	o.op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(o.canvas, &o.op)
}
