package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// Level is the hill as authored in Tiled. Coordinates are screen space (y-down).
type Level struct {
	Name         string
	Width        int
	Height       int
	SlopeDegrees float64
	Ground       []math.Vec2 // polyline, sorted left to right
	Walls        []Rect
	PlayerSpawn  math.Vec2
	BoulderSpawn BoulderSpawn
}

type Rect struct {
	X, Y, Width, Height float64
}

type BoulderSpawn struct {
	X, Y   float64
	Radius float64
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	return parseLevel(levelPath, levelMap)
}

func parseLevel(name string, levelMap *tiled.Map) (Level, error) {
	level := Level{
		Name:         name,
		Width:        levelMap.Width * levelMap.TileWidth,
		Height:       levelMap.Height * levelMap.TileHeight,
		SlopeDegrees: levelMap.Properties.GetFloat("slopeDegrees"),
	}

	var hasPlayer, hasBoulder bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				for _, polyline := range o.PolyLines {
					if polyline.Points == nil {
						continue
					}
					for _, point := range *polyline.Points {
						level.Ground = append(level.Ground, math.Vec2{
							X: o.X + point.X,
							Y: o.Y + point.Y,
						})
					}
				}
			}
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = math.Vec2{X: o.X, Y: o.Y}
				hasPlayer = true
			}
		case "BoulderSpawn":
			for _, o := range og.Objects {
				radius := o.Properties.GetFloat("radius")
				if radius <= 0 {
					radius = config.Boulder.Radius
				}
				level.BoulderSpawn = BoulderSpawn{X: o.X, Y: o.Y, Radius: radius}
				hasBoulder = true
			}
		}
	}

	if len(level.Ground) < 2 {
		return Level{}, fmt.Errorf("level %s: ground needs at least two points", name)
	}
	if !hasPlayer || !hasBoulder {
		return Level{}, errors.New("level " + name + ": missing PlayerSpawn or BoulderSpawn")
	}
	sort.Slice(level.Ground, func(i, j int) bool {
		return level.Ground[i].X < level.Ground[j].X
	})
	if level.SlopeDegrees == 0 {
		level.SlopeDegrees = config.Terrain.SlopeDegrees
	}

	return level, nil
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(err)
	}
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(sheet config.SheetID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", sheet, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	frame := l.MustLoadImage(sheetPath(sheet)).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

func sheetPath(sheet config.SheetID) string {
	return fmt.Sprintf("images/player/%s.png", sheet)
}

var (
	animationLoader = NewAnimationLoader()
)

func GetFrame(sheet config.SheetID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(sheet, frameIndex, srcRect)
}

func GetObjectImage(name string) *ebiten.Image {
	return animationLoader.MustLoadImage(fmt.Sprintf("images/objects/%s", name))
}

// PreloadPlayerSheets decodes every player sheet and caches each frame.
// Gameplay leaves Setup only after this succeeds.
func PreloadPlayerSheets() error {
	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	for _, sheet := range config.PlayerSheets {
		img, err := animationLoader.LoadImage(sheetPath(sheet))
		if err != nil {
			return err
		}
		frames := img.Bounds().Dx() / w
		for i := 0; i < frames; i++ {
			_ = GetFrame(sheet, i, image.Rect(i*w, 0, (i+1)*w, h))
		}
	}
	return nil
}

// PlayerSheetsEmbedded reports whether every player sheet is present, without
// decoding anything.
func PlayerSheetsEmbedded() bool {
	for _, sheet := range config.PlayerSheets {
		if _, err := fs.Stat(animationFS, sheetPath(sheet)); err != nil {
			return false
		}
	}
	return true
}
