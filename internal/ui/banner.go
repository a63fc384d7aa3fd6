package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
██████╗  ███████╗ ██╗   ██╗ ███████╗  █████╗  ██╗       █████╗  ██████╗  ██╗   ██╗
██╔══██╗ ██╔════╝ ██║   ██║ ██╔════╝ ██╔══██╗ ██║      ██╔══██╗ ██╔══██╗ ╚██╗ ██╔╝
██║  ██║ █████╗   ██║   ██║ ███████╗ ███████║ ██║      ███████║ ██████╔╝  ╚████╔╝
██║  ██║ ██╔══╝   ╚██╗ ██╔╝ ╚════██║ ██╔══██║ ██║      ██╔══██║ ██╔══██╗   ╚██╔╝
██████╔╝ ███████╗  ╚████╔╝  ███████║ ██║  ██║ ███████╗ ██║  ██║ ██║  ██║    ██║
╚═════╝  ╚══════╝   ╚═══╝   ╚══════╝ ╚═╝  ╚═╝ ╚══════╝ ╚═╝  ╚═╝ ╚═╝  ╚═╝    ╚═╝
 @fr4nk3nst1ner
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	half := len(runes) / 2
	if half == 0 {
		half = 1
	}

	var coloredText string
	for i, r := range runes {
		coloredText += startColor.Fade(0, float32(len(runes)), float32(i%half), endColor).Sprint(string(r))
	}

	return coloredText
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
