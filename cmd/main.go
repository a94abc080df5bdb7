package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/term"

	"github.com/nevisdale/gsutil/internal/gs"
	"github.com/nevisdale/gsutil/internal/gsmem"
)

type upload struct {
	regs string
	data string
}

type config struct {
	uploads    []upload
	texture    string
	env        int
	alpha      int
	flip       bool
	scale      int
	output     string
	profileDir string
}

func parseFlags() (config, error) {
	var cfg config
	flag.Func("upload", "`regs.bin:data.bin` A+D registers and the pixel data they upload (repeatable, applied in order)", func(s string) error {
		regs, data, ok := strings.Cut(s, ":")
		if !ok || regs == "" || data == "" {
			return fmt.Errorf("expected regs.bin:data.bin, got %q", s)
		}
		cfg.uploads = append(cfg.uploads, upload{regs: regs, data: data})
		return nil
	})
	flag.StringVar(&cfg.texture, "texture", "", "A+D registers (TEX0, CLAMP, TEX2) describing the texture to decode")
	flag.IntVar(&cfg.env, "env", 1, "drawing environment of the texture registers (1 or 2)")
	flag.IntVar(&cfg.alpha, "alpha", gsmem.SampledAlpha, "fixed output alpha (0-255), negative keeps the CLUT alpha")
	flag.BoolVar(&cfg.flip, "flip", false, "store rows bottom up")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscaling factor")
	flag.StringVar(&cfg.output, "o", "texture.png", "output PNG, - for stdout")
	flag.StringVar(&cfg.profileDir, "profile", "", "write a CPU profile to this directory")
	flag.Parse()

	return cfg, cfg.validate()
}

// maxScale keeps a 1024x1024 texture, the largest TEX0 can describe, within
// 8192x8192 after scaling.
const maxScale = 8

func (cfg config) validate() error {
	switch {
	case len(cfg.uploads) == 0:
		return errors.New("at least one -upload is required")
	case cfg.texture == "":
		return errors.New("-texture is required")
	case cfg.env != 1 && cfg.env != 2:
		return fmt.Errorf("-env must be 1 or 2, got %d", cfg.env)
	case cfg.alpha > 0xFF:
		return fmt.Errorf("-alpha must be at most 255, got %d", cfg.alpha)
	case cfg.scale < 1 || cfg.scale > maxScale:
		return fmt.Errorf("-scale must be between 1 and %d, got %d", maxScale, cfg.scale)
	}
	return nil
}

func applyRegisters(ctx *gs.Context, path string) error {
	writes, err := gs.ReadADFile(path)
	if err != nil {
		return err
	}
	for _, reg := range ctx.WriteAD(writes) {
		log.Printf("%s: ignoring register 0x%02X\n", path, uint8(reg))
	}
	return nil
}

func decode(cfg config) (image.Image, error) {
	ctx := gs.NewContext()

	for _, u := range cfg.uploads {
		if err := applyRegisters(ctx, u.regs); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(u.data)
		if err != nil {
			return nil, fmt.Errorf("couldn't read pixel data: %w", err)
		}
		if err := ctx.Upload(data); err != nil {
			return nil, fmt.Errorf("%s: %w", u.data, err)
		}
	}

	if err := applyRegisters(ctx, cfg.texture); err != nil {
		return nil, err
	}
	tex, err := ctx.DownloadTexture(gs.Env(cfg.env-1), cfg.alpha)
	if err != nil {
		return nil, err
	}

	var img image.Image = tex.Image(cfg.flip)
	if cfg.scale > 1 {
		img = gs.Scale(img, cfg.scale)
	}
	return img, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path != "-" {
		return os.Create(path)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("refusing to write PNG data to a terminal")
	}
	return os.Stdout, nil
}

func run() error {
	cfg, err := parseFlags()
	if err != nil {
		flag.Usage()
		return err
	}
	if cfg.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profileDir)).Stop()
	}

	img, err := decode(cfg)
	if err != nil {
		return err
	}

	out, err := openOutput(cfg.output)
	if err != nil {
		return fmt.Errorf("couldn't open output: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("couldn't encode png: %w", err)
	}
	return out.Close()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("gsutil: %s\n", err.Error())
	}
}
