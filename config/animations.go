package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// SheetDef locates a character's sprite sheet and its frame size.
type SheetDef struct {
	Path        string
	FrameWidth  int
	FrameHeight int
}

var Sheets = map[string]SheetDef{
	"crab":       {Path: "images/crab.png", FrameWidth: 32, FrameHeight: 32},
	"anglerfish": {Path: "images/anglerfish.png", FrameWidth: 32, FrameHeight: 16},
	"sawfish":    {Path: "images/sawfish.png", FrameWidth: 32, FrameHeight: 16},
	"star":       {Path: "images/star.png", FrameWidth: 15, FrameHeight: 15},
	"bubble":     {Path: "images/bubble.png", FrameWidth: 8, FrameHeight: 8},
}

// CharacterAnimations maps a sheet key to its animation definitions.
// All sheets are a single row of frames.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"crab": {
		Idle: {First: 0, Last: 0, Step: 1, Speed: 6},
		Swim: {First: 0, Last: 3, Step: 1, Speed: 6},
		Jump: {First: 1, Last: 1, Step: 1, Speed: 6},
	},
	"anglerfish": {
		Patrol: {First: 0, Last: 1, Step: 1, Speed: 10},
		Bite:   {First: 2, Last: 3, Step: 1, Speed: 6},
	},
	"sawfish": {
		Patrol: {First: 0, Last: 1, Step: 1, Speed: 10},
		Bite:   {First: 2, Last: 3, Step: 1, Speed: 6},
	},
	"star": {
		Spin: {First: 0, Last: 2, Step: 1, Speed: 6},
	},
}
