package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/sync/errgroup"
)

//go:embed assets/*.svg
var assetFS embed.FS

// SpriteID names one of the bundled sprite sheets
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpritePlayer
	SpriteProjectile
	SpriteEnemy
	SpriteExplosion
	spriteCount
)

func (id SpriteID) String() string {
	if id < 0 || id >= spriteCount {
		return "unknown"
	}
	return spriteSpecs[id].name
}

// spriteSpec describes how an SVG is rasterized and sliced
type spriteSpec struct {
	name          string
	file          string
	width, height int
	cols, rows    int
}

var spriteSpecs = [spriteCount]spriteSpec{
	SpriteBackground: {name: "bg", file: "assets/bg.svg", width: 375, height: 667, cols: 1, rows: 1},
	SpritePlayer:     {name: "player", file: "assets/player.svg", width: 88, height: 88, cols: 1, rows: 1},
	SpriteProjectile: {name: "bullet", file: "assets/bullet.svg", width: 234, height: 26, cols: 9, rows: 1},
	SpriteEnemy:      {name: "monster", file: "assets/monster.svg", width: 320, height: 64, cols: 5, rows: 1},
	SpriteExplosion:  {name: "boom", file: "assets/boom.svg", width: 192, height: 192, cols: 3, rows: 3},
}

// Bundle rasterizes the embedded sprites in the background and hands them
// out once they are ready. Sprite must be called from the draw goroutine.
type Bundle struct {
	logger *log.Logger

	mu     sync.Mutex
	raw    [spriteCount]*image.RGBA
	sheets [spriteCount]*Sheet
	done   [spriteCount]bool
}

// NewBundle creates an empty bundle. A nil logger discards output.
func NewBundle(logger *log.Logger) *Bundle {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Bundle{logger: logger}
}

// LoadAsync rasterizes every sprite on background goroutines. The returned
// channel receives the first load error, or nil, once all sprites finished.
// A sprite that fails to load stays unavailable.
func (b *Bundle) LoadAsync() <-chan error {
	result := make(chan error, 1)
	go func() {
		result <- b.load(spriteSpecs)
		close(result)
	}()
	return result
}

func (b *Bundle) load(specs [spriteCount]spriteSpec) error {
	var g errgroup.Group
	for id := SpriteID(0); id < spriteCount; id++ {
		g.Go(func() error {
			img, err := loadSprite(specs[id])
			if err != nil {
				b.logger.Printf("sprite %s: %v", id, err)
				return fmt.Errorf("sprite %s: %w", id, err)
			}
			b.mu.Lock()
			b.raw[id] = img
			b.done[id] = true
			b.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Loaded reports whether a sprite finished rasterizing
func (b *Bundle) Loaded(id SpriteID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return id >= 0 && id < spriteCount && b.done[id]
}

// Sprite returns the sliced sheet for id, or nil while it is still loading
func (b *Bundle) Sprite(id SpriteID) *Sheet {
	if id < 0 || id >= spriteCount {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sheets[id] != nil {
		return b.sheets[id]
	}
	if b.raw[id] == nil {
		return nil
	}
	spec := spriteSpecs[id]
	b.sheets[id] = NewSheet(ebiten.NewImageFromImage(b.raw[id]), spec.cols, spec.rows)
	b.raw[id] = nil
	return b.sheets[id]
}

func loadSprite(spec spriteSpec) (*image.RGBA, error) {
	data, err := assetFS.ReadFile(spec.file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.file, err)
	}
	img, err := rasterize(data, spec.width, spec.height)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s: %w", spec.file, err)
	}
	return img, nil
}

// rasterize renders SVG data into an RGBA image of the given size
func rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// ExportPNG rasterizes every bundled sprite and writes it to dir as <name>.png
func ExportPNG(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	var (
		written []string
		errs    []error
	)
	for _, spec := range spriteSpecs {
		img, err := loadSprite(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		path := filepath.Join(dir, spec.name+".png")
		if err := savePNG(img, path); err != nil {
			errs = append(errs, err)
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

func savePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return nil
}
