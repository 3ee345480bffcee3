package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrcode"
	"github.com/qrforge/qrcode/ecl"
	"github.com/qrforge/qrcode/internal/config"
	"github.com/qrforge/qrcode/internal/render"
	"github.com/qrforge/qrcode/mask"
	"github.com/qrforge/qrcode/version"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text as a QR Code symbol",
	Long:  "Encode text as a QR Code symbol. If text is omitted or is \"-\", the payload is read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

var (
	flagEcl    string
	flagVer    int
	flagMask   int
	flagBorder int
	flagScale  int
	flagOut    string
)

func init() {
	encodeCmd.Flags().StringVar(&flagEcl, "ecl", "", "error correction level: L, M, Q or H (overrides config)")
	encodeCmd.Flags().IntVar(&flagVer, "version", 0, "force a specific QR Code version 1-40 (default: smallest that fits)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force a specific mask pattern 0-7 (default: automatically chosen)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet zone width in modules (overrides config)")
	encodeCmd.Flags().IntVar(&flagScale, "scale", -1, "pixels per module for PNG output (overrides config)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file path; .png writes an image, any other path receives the text rendering, omitted prints to the terminal")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(flagVerbose)

	eclSelector := cfg.Ecl
	if flagEcl != "" {
		eclSelector = flagEcl
	}
	level, err := ecl.Parse(eclSelector)
	if err != nil {
		return err
	}

	border := cfg.Border
	if flagBorder >= 0 {
		border = flagBorder
	}
	scale := cfg.Scale
	if flagScale >= 0 {
		scale = flagScale
	}

	var m *qrcode.Mask
	if flagMask >= 0 {
		if flagMask > 7 {
			return fmt.Errorf("--mask must be between 0 and 7, got %d", flagMask)
		}
		mv := mask.New(uint8(flagMask))
		m = &mv
	}

	minver, maxver := version.Min, version.Max
	if flagVer != 0 {
		v, err := version.Parse(flagVer)
		if err != nil {
			return err
		}
		minver, maxver = v, v
	}

	text := ""
	if len(args) == 0 || args[0] == "-" {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(payload), "\n")
	} else {
		text = args[0]
	}

	qr, err := qrcode.EncodeTextAdvanced(text, level, minver, maxver, m, true)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	slog.Info("encoded QR Code",
		"version", qr.Version().Value(),
		"ecl", qr.ErrorCorrectionLevel().String(),
		"mask", qr.Mask().Value(),
		"size", qr.Size(),
		"bytes", len(text),
	)

	if flagOut == "" {
		return render.WriteTerminal(os.Stdout, qr, int32(border))
	}

	if strings.HasSuffix(strings.ToLower(flagOut), ".png") {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		defer f.Close()
		return render.WritePNG(f, qr, int32(border), scale)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOut, err)
	}
	defer f.Close()
	return render.WriteTerminal(f, qr, int32(border))
}

// setupLogging configures the default slog handler's level. qrencode is a
// short-lived CLI, so unlike a daemon it logs to stderr rather than a file.
func setupLogging(verbose bool) {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
