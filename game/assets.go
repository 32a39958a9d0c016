package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrMissingAsset is returned when a configured asset file does not exist.
var ErrMissingAsset = errors.New("missing asset")

// Assets holds everything loaded at startup
type Assets struct {
	Background *ebiten.Image
	Ship       *ebiten.Image
	Bullet     *ebiten.Image
	StarFrames []*ebiten.Image

	FireSound    Sound
	CollectSound Sound

	ScoreFace  text.Face
	BannerFace text.Face
}

// LoadAssets loads every configured asset from fsys and fails on the first
// one that is missing or cannot be decoded. A nil audio context loads silent
// sounds without reading the sound files.
func LoadAssets(fsys fs.FS, config Config, audioCtx *audio.Context) (*Assets, error) {
	names := config.Assets
	assets := &Assets{}

	var err error
	if assets.Background, err = loadImage(fsys, names.Background); err != nil {
		return nil, err
	}
	if assets.Ship, err = loadImage(fsys, names.Ship); err != nil {
		return nil, err
	}
	if assets.Bullet, err = loadImage(fsys, names.Bullet); err != nil {
		return nil, err
	}

	sheet, err := loadImage(fsys, names.StarTiles)
	if err != nil {
		return nil, err
	}
	size := config.Stars.TileSize
	rects := tileRects(sheet.Bounds(), size, size)
	if len(rects) == 0 {
		return nil, fmt.Errorf("star tiles %s: sheet %v is smaller than one %dx%d tile", names.StarTiles, sheet.Bounds().Size(), size, size)
	}
	for _, rect := range rects {
		assets.StarFrames = append(assets.StarFrames, sheet.SubImage(rect).(*ebiten.Image))
	}

	if audioCtx != nil {
		if assets.FireSound, err = loadSound(fsys, audioCtx, names.FireSound); err != nil {
			return nil, err
		}
		if assets.CollectSound, err = loadSound(fsys, audioCtx, names.CollectSound); err != nil {
			return nil, err
		}
	} else {
		assets.FireSound, assets.CollectSound = silence{}, silence{}
	}

	assets.ScoreFace, err = newDefaultFace(config.UI.ScoreFontSize)
	if err != nil {
		return nil, err
	}
	assets.BannerFace, err = newDefaultFace(config.UI.BannerFontSize)
	if err != nil {
		return nil, err
	}

	log.Printf("[Assets] Loaded %d star frames, audio=%t", len(assets.StarFrames), audioCtx != nil)
	return assets, nil
}

// readAsset reads a file and maps a missing file to ErrMissingAsset
func readAsset(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	return data, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	data, err := readAsset(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadSound(fsys fs.FS, ctx *audio.Context, name string) (Sound, error) {
	data, err := readAsset(fsys, name)
	if err != nil {
		return nil, err
	}
	return decodeSound(ctx, name, data)
}

// tileRects cuts bounds into w x h tiles, row by row. Partial tiles at the
// right and bottom edges are dropped.
func tileRects(bounds image.Rectangle, w, h int) []image.Rectangle {
	if w <= 0 || h <= 0 {
		return nil
	}
	var rects []image.Rectangle
	for y := bounds.Min.Y; y+h <= bounds.Max.Y; y += h {
		for x := bounds.Min.X; x+w <= bounds.Max.X; x += w {
			rects = append(rects, image.Rect(x, y, x+w, y+h))
		}
	}
	return rects
}

// newDefaultFace builds a face from the bundled Go Regular font
func newDefaultFace(size float64) (text.Face, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create default font source: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
