package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/rl"
)

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.Flags().StringVarP(&imageOutput, `output`, `o`, `demo.png`, `output file`)
	imageCmd.Flags().StringVar(&imageSize, `size`, `400x300`, `output size <w>x<h>`)
	imageCmd.Flags().StringVar(&imageCrop, `crop`, ``, `crop rectangle <x>,<y>,<w>x<h> applied before resizing`)
	imageCmd.Flags().BoolVar(&imageFlip, `flip`, false, `flip the result vertically`)
}

var (
	imageOutput string
	imageSize   string
	imageCrop   string
	imageFlip   bool
)

var imageCmd = &cobra.Command{
	Use:   `image [input]`,
	Short: `build an image with native image operations and export it`,
	Long: `Build an image with native image operations and export it.

With an input file the image is loaded, optionally cropped and resized.
Without one a gradient is drawn with gg and scaled into a native image.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var input string
		if len(args) == 1 {
			input = args[0]
		}
		run(func() error { return imageFunc(input) })
	},
}

func imageFunc(input string) error {
	size, err := parseSize(imageSize)
	if err != nil {
		return err
	}

	var img *rl.Image
	if input == `` {
		img, err = rl.NewImageFromGoScaled(gradient(), size.X, size.Y)
	} else {
		img, err = rl.LoadImage(input)
	}
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer img.Close()

	if imageCrop != `` {
		r, err := parseRect(imageCrop)
		if err != nil {
			return err
		}
		if err := img.Crop(r); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	if img.Bounds().Size() != size {
		if err := img.Resize(size.X, size.Y); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	if imageFlip {
		img.FlipVertical()
	}
	if err := img.Export(imageOutput); err != nil {
		return errors.Wrap(err, 0)
	}
	fmt.Printf("%s: %dx%d\n", imageOutput, img.Width(), img.Height())
	return nil
}

func gradient() image.Image {
	const steps = 64
	dc := gg.NewContext(256, 256)
	for i := range steps {
		t := float64(i) / steps
		dc.SetRGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2)
		dc.DrawRectangle(0, 256*t, 256, 256/steps+1)
		dc.Fill()
	}
	dc.SetRGBA(1, 0.3, 0.3, 0.8)
	dc.DrawCircle(128, 128, 64)
	dc.Fill()
	return dc.Image()
}

var errSizeUsage = errors.New(`size: usage <w>x<h>`)

func parseSize(s string) (image.Point, error) {
	parts := strings.SplitN(s, `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errors.New(errSizeUsage)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return image.Point{}, errors.New(errSizeUsage)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return image.Point{}, errors.New(errSizeUsage)
	}
	return image.Pt(w, h), nil
}

var errCropUsage = errors.New(`crop: usage <x>,<y>,<w>x<h>`)

func parseRect(s string) (image.Rectangle, error) {
	parts := strings.SplitN(s, `,`, 3)
	if len(parts) != 3 {
		return image.Rectangle{}, errors.New(errCropUsage)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return image.Rectangle{}, errors.New(errCropUsage)
	}
	size, err := parseSize(parts[2])
	if err != nil {
		return image.Rectangle{}, errors.New(errCropUsage)
	}
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y).Add(size)}, nil
}
