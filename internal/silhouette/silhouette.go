// Package silhouette renders obscured black-shape versions of character
// portraits and memoizes them as PNG files on disk, so each character's
// silhouette is generated at most once per server lifetime.
package silhouette

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

const (
	maxWidth  = 500
	maxHeight = 700

	// Luminance cutoff separating "shape" from background. Pixels at or
	// below it render black, the rest white.
	threshold = 40

	brightnessFactor = 1.3
)

// Store generates silhouettes and serves paths/URLs for the on-disk
// artifacts. Writes are whole-file and idempotent: two goroutines ensuring
// the same character produce identical bytes, so last-writer-wins is safe.
type Store struct {
	dir     string
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewStore builds a store rooted at dir, serving artifacts under baseURL
// (e.g. "/silhouettes"). The directory is created if missing.
func NewStore(dir, baseURL string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create silhouette dir: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}, nil
}

// SafeName converts a character name to a filesystem-safe stem: every
// non-alphanumeric rune becomes an underscore and the result is lowercased,
// so "Monkey D. Luffy" yields "monkey_d__luffy".
func SafeName(characterName string) string {
	var b strings.Builder
	b.Grow(len(characterName))
	for _, r := range characterName {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Path returns the on-disk path of the character's silhouette artifact.
func (s *Store) Path(characterName string) string {
	return filepath.Join(s.dir, SafeName(characterName)+".png")
}

// URL returns the served URL of the character's silhouette artifact.
func (s *Store) URL(characterName string) string {
	return s.baseURL + "/" + SafeName(characterName) + ".png"
}

// Exists reports whether a silhouette artifact is already on disk.
func (s *Store) Exists(characterName string) bool {
	info, err := os.Stat(s.Path(characterName))
	return err == nil && !info.IsDir()
}

// Ensure returns the URL of the character's silhouette, generating and
// persisting it from sourceURL when no artifact exists yet.
func (s *Store) Ensure(ctx context.Context, characterName, sourceURL string) (string, error) {
	if s.Exists(characterName) {
		return s.URL(characterName), nil
	}

	src, err := s.download(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("download portrait: %w", err)
	}

	out := Generate(src)

	f, err := os.Create(s.Path(characterName))
	if err != nil {
		return "", fmt.Errorf("create silhouette file: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("encode silhouette: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close silhouette file: %w", err)
	}

	s.log.Info().Str("character", characterName).Str("file", s.Path(characterName)).Msg("silhouette generated")
	return s.URL(characterName), nil
}

// Generate turns a portrait into a silhouette: downscale to fit 500x700,
// stretch contrast to the full range, brighten, grayscale, threshold to
// black/white, then negate so the brightened figure renders as a solid
// black shape with only the darkest outline detail left light.
func Generate(src image.Image) image.Image {
	img := imaging.Fit(src, maxWidth, maxHeight, imaging.Lanczos)
	img = stretchContrast(img)
	img = imaging.AdjustFunc(img, brighten)
	img = imaging.Grayscale(img)
	img = imaging.AdjustFunc(img, binarize)
	return imaging.Invert(img)
}

// brighten scales each channel by brightnessFactor, clamping at 255.
func brighten(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(c.R) * brightnessFactor),
		G: clamp8(float64(c.G) * brightnessFactor),
		B: clamp8(float64(c.B) * brightnessFactor),
		A: c.A,
	}
}

// binarize maps a grayscale pixel to pure black or white around threshold.
func binarize(c color.NRGBA) color.NRGBA {
	if c.R <= threshold {
		return color.NRGBA{A: c.A}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: c.A}
}

// stretchContrast linearly rescales luminance so the darkest pixel maps to
// 0 and the brightest to 255, making the fixed threshold robust across
// portraits with different exposure.
func stretchContrast(img *image.NRGBA) *image.NRGBA {
	lo, hi := uint8(255), uint8(0)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			l := luminance(c)
			if l < lo {
				lo = l
			}
			if l > hi {
				hi = l
			}
		}
	}
	if hi <= lo {
		return img
	}
	scale := 255.0 / float64(hi-lo)
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(float64(int(c.R)-int(lo)) * scale),
			G: clamp8(float64(int(c.G)-int(lo)) * scale),
			B: clamp8(float64(int(c.B)-int(lo)) * scale),
			A: c.A,
		}
	})
}

func luminance(c color.NRGBA) uint8 {
	return clamp8(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// download fetches and decodes the portrait at url.
func (s *Store) download(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching portrait", resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode portrait: %w", err)
	}
	return img, nil
}
