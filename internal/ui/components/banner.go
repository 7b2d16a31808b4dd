package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shapes/internal/ui/theme"
)

const bannerArt = `███████╗██╗  ██╗ █████╗ ██████╗ ███████╗███████╗
██╔════╝██║  ██║██╔══██╗██╔══██╗██╔════╝██╔════╝
███████╗███████║███████║██████╔╝█████╗  ███████╗
╚════██║██╔══██║██╔══██║██╔═══╝ ██╔══╝  ╚════██║
███████║██║  ██║██║  ██║██║     ███████╗███████║
╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚══════╝╚══════╝`

const bannerCompact = "S · H · A · P · E · S"

// BannerWidth is the width of the full block-letter banner.
const BannerWidth = 48

// RenderBanner returns the block-letter title, or a one-line fallback when
// compact is set or width cannot fit it.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact || width < BannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
