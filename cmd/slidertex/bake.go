package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wieku/danser-sliders/app/graphics/sliderrenderer"
)

type bakeFlags struct {
	out     string
	preview bool
	watch   bool
}

func newBakeCmd(root *rootFlags) *cobra.Command {
	flags := &bakeFlags{}

	cmd := &cobra.Command{
		Use:   "bake",
		Short: "Bake the cross-section texture into a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.out == "" {
				return errors.New("--out is required")
			}

			if err := bake(root, flags); err != nil {
				return err
			}

			if !flags.watch {
				return nil
			}

			if root.configPath == "" {
				return errors.New("--watch needs --config")
			}

			return watchConfig(cmd.Context(), root.configPath, root.log, func() error {
				return bake(root, flags)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output PNG path")
	cmd.Flags().BoolVarP(&flags.preview, "preview", "p", false, "Render the full mirrored track instead of the texture")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Bake again whenever the config file changes")

	return cmd
}

func bake(root *rootFlags, flags *bakeFlags) error {
	style, cs, err := root.loadStyle()
	if err != nil {
		return err
	}

	var img image.Image

	if flags.preview {
		img, err = sliderrenderer.Preview(cs, style.PreviewWidth, style.PreviewHeight)
	} else {
		img, err = sliderrenderer.Bake(cs, sliderrenderer.TextureWidth(style.PathRadius))
	}

	if err != nil {
		return err
	}

	size, err := writePNG(flags.out, img)
	if err != nil {
		return err
	}

	root.log.WithFields(map[string]any{
		"style":  style.Name,
		"legacy": style.IsLegacy(),
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
		"size":   humanize.Bytes(uint64(size)),
		"path":   flags.out,
	}).Info("Texture baked")

	return nil
}

func writePNG(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return 0, err
	}

	return info.Size(), f.Close()
}
