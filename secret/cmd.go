package secret

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
)

// CLICmd is the full flag surface of the tool. Decode is the default
// mode; --encode switches to embedding.
type CLICmd struct {
	Encode bool   `short:"e" help:"Embed the secret instead of extracting one."`
	Text   string `default:"Hello World" help:"The secret you want to embed."`
	Input  string `short:"i" required:"" help:"Source image file."`
	Output string `short:"o" help:"Destination for the encoded image (png or tiff). Defaults to the input with an .enc.png extension."`
	Dump   string `help:"Write a payload that is not printable text to this file instead of failing."`
	Silent bool   `short:"s" help:"Reduce stdout print."`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	input, err := filepath.Abs(c.Input)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(input); err == nil && !info.Mode().IsRegular() {
			err = fmt.Errorf("not a regular file")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid input path %q: %w", c.Input, err)
	}
	c.Input = input

	if c.Encode {
		if c.Output == "" {
			c.Output = strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".enc.png"
		}
		switch ext := strings.ToLower(filepath.Ext(c.Output)); ext {
		case ".png", ".tif", ".tiff":
		default:
			return fmt.Errorf("output format %q does not preserve samples, use png or tiff", ext)
		}
	}

	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default()
	if c.Silent {
		logger = slog.New(slog.DiscardHandler)
	}

	img, err := LoadImage(c.Input)
	if err != nil {
		return fmt.Errorf("the file %q could not be correctly read: %w", c.Input, err)
	}

	if c.Encode {
		enc := NewNaiveEncoder()
		enc.Encode([]byte(c.Text))
		return NewWriter(img, enc, logger.With("file", c.Input)).WriteFile(c.Output)
	}

	message, err := NewReader(img, NaiveDecoder{}, logger.With("file", c.Input)).Read()
	if err != nil {
		return err
	}

	if !utf8.Valid(message) {
		if c.Dump == "" {
			return fmt.Errorf("%w (use --dump to save the raw bytes)", ErrNotText)
		}
		if err := os.WriteFile(c.Dump, message, 0o644); err != nil {
			return fmt.Errorf("could not dump raw message to %q: %w", c.Dump, err)
		}
		logger.Info("dumped raw message", "dest", c.Dump, "bytes", len(message))
		return nil
	}

	logger.Info("here is the message")
	fmt.Println(string(message))
	return nil
}
