package qrcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

var ErrInvalidSize = errors.New("qrcode: size out of range")

// Labeler renders PNG QR codes that point at a generator's page in the
// frontend, for printing on the physical equipment.
type Labeler struct {
	baseURL string
}

func NewLabeler(baseURL string) *Labeler {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Labeler{baseURL: baseURL}
}

// URL is the address encoded in the label of the given generator.
func (l *Labeler) URL(generatorID uint) string {
	return fmt.Sprintf("%s%d", l.baseURL, generatorID)
}

// GeneratorLabel returns a size x size PNG.
func (l *Labeler) GeneratorLabel(generatorID uint, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	png, err := qrcode.Encode(l.URL(generatorID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
