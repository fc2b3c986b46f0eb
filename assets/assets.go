package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/automoto/ferrisdive/assets/levels"
	"github.com/automoto/ferrisdive/config"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled/render"
)

//go:embed all:images
var imageFS embed.FS

// ImageLoader caches decoded images and the sub-images cut from them.
type ImageLoader struct {
	fsys       embed.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader(fsys embed.FS) *ImageLoader {
	return &ImageLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := l.fsys.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// SubImage returns a cached sub-image of the image at path.
func (l *ImageLoader) SubImage(path string, rect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d,%d,%d,%d", path, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	img := l.MustLoadImage(path).SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = img
	return img
}

var (
	spriteLoader = NewImageLoader(imageFS)
	tileLoader   = NewImageLoader(levels.FS)
	waterCache   = map[int]*ebiten.Image{}
)

// GetFrame returns frame index of the sheet registered under key.
// Sheets are a single row of equally sized frames.
func GetFrame(key string, index int) *ebiten.Image {
	sheet, ok := config.Sheets[key]
	if !ok {
		panic(fmt.Sprintf("No sprite sheet defined for key: %s", key))
	}
	sx := index * sheet.FrameWidth
	return spriteLoader.SubImage(sheet.Path, image.Rect(sx, 0, sx+sheet.FrameWidth, sheet.FrameHeight))
}

// GetTile returns the tileset image cell for a compiled tile sprite.
func GetTile(s *leveldata.TileSprite) *ebiten.Image {
	if s.Tileset == nil || s.Tileset.Image == nil {
		return nil
	}
	return tileLoader.SubImage(s.Tileset.Image.Source, s.Tileset.GetTileRect(s.Index))
}

// WaterLayer pre-renders the level's water layer with go-tiled's renderer.
// The result is cached per level index; nil when the level has no water.
func WaterLayer(lvl *leveldata.Level) *ebiten.Image {
	if lvl.Source == nil || lvl.WaterLayer < 0 {
		return nil
	}
	if img, ok := waterCache[lvl.Index]; ok {
		return img
	}

	renderer, err := render.NewRendererWithFileSystem(lvl.Source, levels.FS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}
	if err := renderer.RenderLayer(lvl.WaterLayer); err != nil {
		panic(fmt.Sprintf("Failed to render water layer of level %d: %v", lvl.Index, err))
	}
	img := ebiten.NewImageFromImage(renderer.Result)
	renderer.Clear()

	waterCache[lvl.Index] = img
	return img
}

// PreloadAll decodes every sprite sheet and tileset up front so the first
// frame after a level change does not stall on texture uploads.
func PreloadAll(all []*leveldata.Level) {
	for key, def := range config.CharacterAnimations {
		for _, anim := range def {
			for i := anim.First; i <= anim.Last; i += max(anim.Step, 1) {
				_ = GetFrame(key, i)
			}
		}
	}
	for i := 0; i < config.Bubble.Frames; i++ {
		_ = GetFrame("bubble", i)
	}
	for _, lvl := range all {
		for i := range lvl.Tiles {
			_ = GetTile(&lvl.Tiles[i])
		}
		_ = WaterLayer(lvl)
	}
}
