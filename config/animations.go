package config

// SheetID identifies a sprite sheet.
type SheetID string

const (
	SheetNone       SheetID = ""
	SheetPlayerIdle SheetID = "idle"
	SheetPlayerWalk SheetID = "walk"
	SheetPlayerPush SheetID = "push"
	SheetPlayerHurt SheetID = "hurt"
	SheetPlayerFall SheetID = "fall"
)

type AnimationDef struct {
	Sheet SheetID
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// Clip names an animation the selector can ask for.
type Clip int

const (
	ClipSetup Clip = iota
	ClipIdle
	ClipWalk
	ClipPush
	ClipHurt
	ClipFall
)

// PlayerAnimations maps each clip to its sheet and frame range.
var PlayerAnimations = map[Clip]AnimationDef{
	ClipSetup: {Sheet: SheetPlayerIdle, First: 0, Last: 0, Step: 1, Speed: 6},
	ClipIdle:  {Sheet: SheetPlayerIdle, First: 0, Last: 3, Step: 1, Speed: 12},
	ClipWalk:  {Sheet: SheetPlayerWalk, First: 0, Last: 7, Step: 1, Speed: 6},
	ClipPush:  {Sheet: SheetPlayerPush, First: 0, Last: 7, Step: 1, Speed: 8},
	ClipHurt:  {Sheet: SheetPlayerHurt, First: 0, Last: 3, Step: 1, Speed: 5},
	ClipFall:  {Sheet: SheetPlayerFall, First: 0, Last: 1, Step: 1, Speed: 8},
}

// PlayerSheets lists every sheet the player needs before leaving Setup.
var PlayerSheets = []SheetID{
	SheetPlayerIdle,
	SheetPlayerWalk,
	SheetPlayerPush,
	SheetPlayerHurt,
	SheetPlayerFall,
}
