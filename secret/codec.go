package secret

// Encoder turns a message into the bit sequence that gets embedded into
// an image. Implementations carry the message between the Encode and
// Bitstream calls.
type Encoder interface {
	Encode(msg []byte)
	// Bitstream returns one byte per embedded bit, each holding 0 or 1
	// in its low position, most significant bit of every message byte
	// first.
	Bitstream() []byte
}

// Decoder post-processes the bytes extracted from an image. It maps byte
// sequences to byte sequences so that future variants can decrypt or
// decompress without knowing how bits are pulled out of samples.
type Decoder interface {
	Decode(seq []byte) []byte
}

// NaiveEncoder frames the message by appending a single zero byte as a
// terminator. A message that itself contains a zero byte is cut short at
// that byte on extraction; the wire format has no escaping.
type NaiveEncoder struct {
	text []byte
}

func NewNaiveEncoder() *NaiveEncoder {
	return &NaiveEncoder{}
}

// Encode stores a copy of msg with the terminator appended. Calling it
// again replaces the previous message.
func (e *NaiveEncoder) Encode(msg []byte) {
	e.text = make([]byte, 0, len(msg)+1)
	e.text = append(e.text, msg...)
	e.text = append(e.text, 0)
}

func (e *NaiveEncoder) Bitstream() []byte {
	bits := make([]byte, 0, len(e.text)*8)
	for _, b := range e.text {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1)
		}
	}
	return bits
}

// NaiveDecoder returns the extracted bytes unchanged.
type NaiveDecoder struct{}

func (NaiveDecoder) Decode(seq []byte) []byte {
	return seq
}
