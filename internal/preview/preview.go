// Package preview rasterizes library icons into PNG thumbnails.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	DefaultSize = 64
	MinSize     = 8
	MaxSize     = 1024

	// DefaultColor stands in for currentColor, which has no meaning outside
	// a page.
	DefaultColor = "#000000"
)

const hexDigits = "0123456789abcdefABCDEF"

var (
	ErrEmptyViewBox = errors.New("svg has an empty viewBox")
	ErrInvalidColor = errors.New("color must be a hex value like #1e293b or #fff")
)

// ParseColor normalizes a #rgb or #rrggbb value, with or without the hash,
// to lowercase #rrggbb. Empty means DefaultColor.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColor, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 || strings.Trim(s[1:], hexDigits) != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}

// ClampSize keeps size within [MinSize, MaxSize]; zero or less means
// DefaultSize.
func ClampSize(size int) int {
	if size <= 0 {
		return DefaultSize
	}
	return max(MinSize, min(size, MaxSize))
}

// Render draws content into a size x size PNG with currentColor painted in
// color. Unsupported elements such as animations are ignored.
func Render(content string, size int, color string) ([]byte, error) {
	size = ClampSize(size)
	color, err := ParseColor(color)
	if err != nil {
		return nil, err
	}
	content = strings.ReplaceAll(content, "currentColor", color)

	icon, err := oksvg.ReadIconStream(strings.NewReader(content), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, ErrEmptyViewBox
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.Draw(rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
