package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lofi/sisyphus-simulator/assets"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Reused for the hill fill
	groundPath     vector.Path
	groundVertices []ebiten.Vertex
	groundIndices  []uint16
	whiteImage     *ebiten.Image
	whiteSubImage  *ebiten.Image
)

func cameraData(ecs *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// DrawBackground clears the screen to the sky colour.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
}

// DrawTerrain fills every visible ground segment down to the bottom of the
// screen and outlines its surface.
func DrawTerrain(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraData(ecs)
	if !ok {
		return
	}
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(cfg.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	minX := camera.Position.X - float64(width)/2 - cfg.Terrain.SegmentWidth
	maxX := camera.Position.X + float64(width)/2 + cfg.Terrain.SegmentWidth
	bottom := float32(height)

	components.Segment.Each(ecs.World, func(e *donburi.Entry) {
		seg := components.Segment.Get(e)
		if seg.B.X < minX || seg.A.X > maxX {
			return
		}
		a := WorldToScreen(camera, seg.A)
		b := WorldToScreen(camera, seg.B)

		groundPath.Reset()
		groundPath.MoveTo(float32(a.X), float32(a.Y))
		groundPath.LineTo(float32(b.X), float32(b.Y))
		groundPath.LineTo(float32(b.X), bottom)
		groundPath.LineTo(float32(a.X), bottom)
		groundPath.Close()

		groundVertices, groundIndices = groundPath.AppendVerticesAndIndicesForFilling(groundVertices[:0], groundIndices[:0])
		r, g, bl, al := cfg.Dirt.RGBA()
		for i := range groundVertices {
			groundVertices[i].SrcX = 1
			groundVertices[i].SrcY = 1
			groundVertices[i].ColorR = float32(r) / 0xffff
			groundVertices[i].ColorG = float32(g) / 0xffff
			groundVertices[i].ColorB = float32(bl) / 0xffff
			groundVertices[i].ColorA = float32(al) / 0xffff
		}
		screen.DrawTriangles(groundVertices, groundIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{})

		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 4, cfg.Grass, true)
	})
}

// DrawBoulder renders the boulder sprite rotated with its rigid body.
func DrawBoulder(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraData(ecs)
	if !ok {
		return
	}
	boulder, ok := boulderEntry(ecs)
	if !ok {
		return
	}
	img := assets.GetObjectImage("boulder.png")
	circle := boulderCircle(boulder)

	size := float64(img.Bounds().Dx())
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-size/2, -size/2)
	drawOp.GeoM.Scale(circle.R*2/size, circle.R*2/size)
	drawOp.GeoM.Rotate(BoulderAngle(ecs))
	drawOp.GeoM.Translate(circle.X, circle.Y)
	drawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2-camera.Position.X, float64(screen.Bounds().Dy())/2-camera.Position.Y)
	screen.DrawImage(img, drawOp)
}

// DrawAnimated renders the player's current frame, centred on its collider,
// flipped by facing and rotated with the body.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraData(ecs)
	if !ok {
		return
	}
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	if !sessionData(ecs).PlayerTextures {
		return
	}
	animData := components.Animation.Get(player)
	if animData.CurrentAnimation == nil {
		return
	}

	frame := animData.CurrentAnimation.Frame()
	sx := frame * animData.FrameWidth
	srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
	img := assets.GetFrame(animData.CurrentSheet, frame, srcRect)

	box := playerBox(player)
	body := components.Body.Get(player)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight)/2)
	if components.Player.Get(player).Facing == cfg.FacingLeft {
		drawOp.GeoM.Scale(-1, 1)
	}
	// Body rotation is counter-clockwise; screen rotation is clockwise.
	drawOp.GeoM.Rotate(-body.Rotation)
	drawOp.GeoM.Translate(box.X, box.Y)
	drawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2-camera.Position.X, float64(screen.Bounds().Dy())/2-camera.Position.Y)
	screen.DrawImage(img, drawOp)
}

// DrawMarker renders the fatigue icon above the player.
func DrawMarker(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraData(ecs)
	if !ok {
		return
	}
	markerEntry, ok := components.Marker.First(ecs.World)
	if !ok {
		return
	}
	marker := components.Marker.Get(markerEntry)

	size := cfg.Marker.IconSize
	icons := assets.GetObjectImage("fatigue.png")
	src := image.Rect(marker.Icon*size, 0, (marker.Icon+1)*size, size)
	icon := icons.SubImage(src).(*ebiten.Image)

	p := WorldToScreen(camera, marker.Position)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(p.X-float64(size)/2, p.Y-float64(size)/2)
	screen.DrawImage(icon, drawOp)
}
