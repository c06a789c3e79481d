package render

import (
	"image/color"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

// Dracula-inspired dark palette.
var (
	bgDark   = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	gridLine = color.RGBA{0x2a, 0x2a, 0x3e, 0xff}

	edgeColor    = color.RGBA{0x6b, 0x80, 0xbf, 0x80}
	clusterFill  = color.RGBA{0x8b, 0xe9, 0xfd, 0x50}
	clusterRing  = color.RGBA{0x8b, 0xe9, 0xfd, 0xc0}
	collapseRing = color.RGBA{0xff, 0xb8, 0x6c, 0xff}
	accentRing   = color.RGBA{0xf1, 0xfa, 0x8c, 0xff}

	textPrimary   = color.RGBA{0xf8, 0xf8, 0xf2, 0xff}
	textSecondary = color.RGBA{0xa0, 0xa0, 0xb0, 0xff}

	levelS = color.RGBA{0xff, 0x79, 0xc6, 0xff}
	levelA = color.RGBA{0x50, 0xfa, 0x7b, 0xff}
	levelB = color.RGBA{0x8b, 0xe9, 0xfd, 0xff}
	levelC = color.RGBA{0x62, 0x72, 0xa4, 0xff}
)

// LevelColor returns the node fill for a performance category.
func LevelColor(l model.Level) color.RGBA {
	switch l {
	case model.LevelS:
		return levelS
	case model.LevelA:
		return levelA
	case model.LevelB:
		return levelB
	default:
		return levelC
	}
}
