package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	painter "github.com/manpaco/ipv6-canvas-painter"
	"github.com/manpaco/ipv6-canvas-painter/utils"
)

const helpBanner = `
┌─┐┌─┐┬┌┐┌┌┬┐┌─┐┬─┐
├─┘├─┤││││ │ ├┤ ├┬┘
┴  ┴ ┴┴┘└┘ ┴ └─┘┴└─

Draw an image on a shared IPv6 canvas, one ping per pixel.
    Version: %s

Usage: ipv6-canvas-painter [flags] <image|->
`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	originX     = flag.Int("x", 0, "The x coordinate to start drawing at")
	originY     = flag.Int("y", 0, "The y coordinate to start drawing at")
	coordFile   = flag.String("c", "", "Path to a coordinate record, overrides -x/-y")
	delay       = flag.Float64("d", 1, "Delay between each pixel in seconds")
	baseAddr    = flag.String("b", painter.DefaultBaseAddr, "The base IPv6 address to draw to")
	scale       = flag.Int("scale", 0, "Pre-scale the image to this percentage of its size (0 = off)")
	paletteName = flag.String("palette", "full", "Canvas color set: full, web or plan9")
	reverse     = flag.Bool("reverse", false, "Paint in descending traversal order")
	dryRun      = flag.Bool("dry-run", false, "Encode and pace without transmitting")
	clip        = flag.Bool("clip", false, "Skip out-of-bounds pixels instead of failing up front")
	strictColor = flag.Bool("strict-color", false, "Abort when a color is not representable")
	verbose     = flag.Bool("verbose", false, "Print each ping command before executing")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide an image to paint!", utils.ErrorMessage))
	}
	if *delay < 0 {
		log.Fatal(utils.DecorateText("The delay must be greater than or equal to 0", utils.ErrorMessage))
	}

	canvas, err := painter.NewCanvas(*baseAddr)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid base address: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	origin := image.Pt(*originX, *originY)
	if *coordFile != "" {
		origin, err = painter.ReadOriginFile(*coordFile)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Invalid coordinate record: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
	if origin.X < 0 || origin.Y < 0 {
		log.Fatal(utils.DecorateText("The origin coordinates must be greater than or equal to 0", utils.ErrorMessage))
	}

	img := loadSource(flag.Arg(0))

	img, err = painter.ScaleImage(img, *scale)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to scale the image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	// Refuse jobs that overflow the canvas unless clipping was asked for.
	if !*clip {
		size := image.Pt(img.Bounds().Dx(), img.Bounds().Dy())
		if err := canvas.Fit(origin, size); err != nil {
			if fit, ok := err.(*painter.CanvasFitError); ok {
				msg := "You are trying to draw outside the canvas."
				if fit.SuggestedX >= 0 && origin.X > fit.SuggestedX {
					msg += fmt.Sprintf(" Suggested x: %d.", fit.SuggestedX)
				}
				if fit.SuggestedY >= 0 && origin.Y > fit.SuggestedY {
					msg += fmt.Sprintf(" Suggested y: %d.", fit.SuggestedY)
				}
				log.Fatal(utils.DecorateText(msg, utils.ErrorMessage))
			}
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}

	job := painter.PaintJob{
		Image:    img,
		Origin:   origin,
		Canvas:   canvas,
		Protocol: buildProtocol(),
		Policy:   colorPolicy(),
		Delay:    time.Duration(*delay * float64(time.Second)),
		Reverse:  *reverse,
		DryRun:   *dryRun,
	}

	tx := painter.NewPingTransmitter()
	tx.Verbose = *verbose
	tx.Writer = os.Stdout

	sched := painter.NewScheduler(job, tx)
	sched.Progress = os.Stderr

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	summary, err := sched.Run(ctx)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError painting the image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\n%s %s\n",
		utils.DecorateText("⚡ PAINTER", utils.StatusMessage),
		utils.DecorateText(summary.String(), utils.DefaultMessage),
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// loadSource resolves the image argument, which may be a local file, a
// URL or the stdin pipe name.
func loadSource(src string) *image.NRGBA {
	if utils.IsValidUrl(src) {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ PAINTER", utils.StatusMessage),
			utils.DecorateText("is downloading the image...", utils.DefaultMessage))
		spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, true)
		spinner.Start()

		tmp, err := utils.DownloadImage(src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
			defer tmp.Close()
		}
		spinner.Stop()

		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to download the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}

		img, err := painter.LoadImage(tmp.Name())
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		return img
	}

	if src == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdin", utils.ErrorMessage))
		}
		img, err := painter.DecodeImage(os.Stdin)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to decode the piped image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		return img
	}

	img, err := painter.LoadImage(src)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	return img
}

// buildProtocol selects the address codec for the requested canvas
// color set.
func buildProtocol() painter.Protocol {
	switch *paletteName {
	case "full":
		return painter.ProtocolV1{}
	case "web":
		return painter.PaletteProtocol{
			Inner:   painter.ProtocolV1{},
			Palette: palette.WebSafe,
			Policy:  colorPolicy(),
		}
	case "plan9":
		return painter.PaletteProtocol{
			Inner:   painter.ProtocolV1{},
			Palette: palette.Plan9,
			Policy:  colorPolicy(),
		}
	default:
		log.Fatalf(utils.DecorateText("Unknown palette %q, expected full, web or plan9", utils.ErrorMessage), *paletteName)
		return nil
	}
}

func colorPolicy() painter.ColorPolicy {
	if *strictColor {
		return painter.StrictColors
	}
	return painter.QuantizeColors
}
