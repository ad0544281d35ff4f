package secret

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMessage means the sample stream ran out before a zero byte
	// was assembled: the image carries no embedded message, or a
	// truncated one. The two cases cannot be told apart.
	ErrNoMessage = errors.New("image has no embedded message")

	// ErrNotText means the extracted payload is not valid UTF-8.
	ErrNotText = errors.New("extracted message is not printable text")
)

// CapacityError reports a message bitstream longer than the image can
// carry. Both counts are in channel samples.
type CapacityError struct {
	Needed    int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message needs %d samples but the image only has %d", e.Needed, e.Available)
}
