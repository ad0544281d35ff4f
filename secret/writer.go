package secret

import (
	"image"
	"log/slog"
)

// Writer embeds an encoder's bitstream into the least significant bit of
// every channel sample, walking the image in raster order, channel-major
// within each pixel.
type Writer struct {
	img *image.NRGBA
	enc Encoder
	log *slog.Logger
}

func NewWriter(img *image.NRGBA, enc Encoder, logger *slog.Logger) *Writer {
	b := img.Bounds()
	logger.Info("image loaded", "width", b.Dx(), "height", b.Dy(),
		"capacity_bytes", capacityBytes(img))
	return &Writer{img: img, enc: enc, log: logger}
}

// Embed overwrites sample LSBs with the encoder's bitstream. Samples past
// the end of the bitstream are left untouched. If the bitstream does not
// fit, the buffer is not modified at all and a *CapacityError is
// returned.
func (w *Writer) Embed() error {
	bits := w.enc.Bitstream()
	if avail := sampleCount(w.img); len(bits) > avail {
		return &CapacityError{Needed: len(bits), Available: avail}
	}

	b := w.img.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y && i < len(bits); y++ {
		row := w.img.Pix[w.img.PixOffset(b.Min.X, y):w.img.PixOffset(b.Max.X, y)]
		for x := range row {
			if i == len(bits) {
				break
			}
			row[x] = row[x]&^1 | bits[i]
			i++
		}
	}
	return nil
}

// WriteFile embeds the message and persists the image to dest in a
// lossless format chosen by the destination's extension. On failure no
// file is left behind at dest.
func (w *Writer) WriteFile(dest string) error {
	if err := w.Embed(); err != nil {
		return err
	}
	if err := saveImage(w.img, dest); err != nil {
		return err
	}
	w.log.Info("wrote encoded image", "dest", dest)
	return nil
}

func sampleCount(img *image.NRGBA) int {
	b := img.Bounds()
	return b.Dx() * b.Dy() * 4
}

// capacityBytes is the largest message the image can carry, one sample
// byte reserved for the terminator.
func capacityBytes(img *image.NRGBA) int {
	if n := sampleCount(img)/8 - 1; n > 0 {
		return n
	}
	return 0
}
