package secret

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaiveEncoderAppendsSentinel(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
	}{
		{"normal", []byte("Hello World!")},
		{"empty", []byte{}},
		{"long", bytes.Repeat([]byte("a"), 4096)},
		{"binary", []byte{0xff, 0x01, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewNaiveEncoder()
			enc.Encode(tt.msg)

			bits := enc.Bitstream()
			assert.Len(t, bits, 8*(len(tt.msg)+1))
			for _, b := range bits[len(bits)-8:] {
				assert.Zero(t, b, "terminator bits must all be zero")
			}
		})
	}
}

func TestNaiveEncoderBitstreamOrder(t *testing.T) {
	enc := NewNaiveEncoder()
	enc.Encode([]byte("Hi")) // 0x48, 0x69

	want := []byte{
		0, 1, 0, 0, 1, 0, 0, 0,
		0, 1, 1, 0, 1, 0, 0, 1,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, want, enc.Bitstream())
}

func TestNaiveEncoderEmptyMessage(t *testing.T) {
	enc := NewNaiveEncoder()
	enc.Encode(nil)
	assert.Equal(t, make([]byte, 8), enc.Bitstream())
}

func TestNaiveEncoderReplacesOnReencode(t *testing.T) {
	enc := NewNaiveEncoder()
	enc.Encode([]byte("a much longer first message"))
	enc.Encode([]byte("Hi"))
	assert.Len(t, enc.Bitstream(), 24)
}

func TestNaiveDecoderIdentity(t *testing.T) {
	seq := []byte{1, 2, 3, 0, 255}
	assert.Equal(t, seq, NaiveDecoder{}.Decode(seq))
}
