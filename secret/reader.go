package secret

import (
	"image"
	"log/slog"
)

// Reader extracts a message from the least significant bit of every
// channel sample, walking the image in the same order the Writer uses.
type Reader struct {
	img *image.NRGBA
	dec Decoder
	log *slog.Logger
}

func NewReader(img *image.NRGBA, dec Decoder, logger *slog.Logger) *Reader {
	b := img.Bounds()
	logger.Info("image loaded", "width", b.Dx(), "height", b.Dy())
	return &Reader{img: img, dec: dec, log: logger}
}

// Read reassembles bytes from consecutive sample LSBs, most significant
// bit first, until an all-zero byte marks the end of the message. The
// zero byte is dropped and the accumulated bytes are handed to the
// Decoder. If the samples run out before a zero byte turns up, Read
// fails with ErrNoMessage.
func (r *Reader) Read() ([]byte, error) {
	var message []byte
	var acc byte
	count := 0

	b := r.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := r.img.Pix[r.img.PixOffset(b.Min.X, y):r.img.PixOffset(b.Max.X, y)]
		for _, sample := range row {
			acc = acc<<1 | sample&1
			count++
			if count < 8 {
				continue
			}
			if acc == 0 {
				return r.dec.Decode(message), nil
			}
			message = append(message, acc)
			acc, count = 0, 0
		}
	}
	return nil, ErrNoMessage
}
