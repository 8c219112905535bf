package qr

import (
	"strings"

	qrcode "github.com/yeqown/go-qrcode/v2"

	"github.com/matzehuels/qrgen/pkg/errors"
	"github.com/matzehuels/qrgen/pkg/grid"
)

// Level is an error-correction level.
type Level string

// Error-correction levels, from least to most redundancy.
const (
	LevelLow      Level = "low"      // ~7% recovery
	LevelMedium   Level = "medium"   // ~15% recovery
	LevelQuartile Level = "quartile" // ~25% recovery
	LevelHigh     Level = "high"     // ~30% recovery
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = LevelHigh

// Levels lists every level from least to most redundancy.
var Levels = []Level{LevelLow, LevelMedium, LevelQuartile, LevelHigh}

// ParseLevel parses a level name. Single-letter forms (L, M, Q, H) and
// "quart" are accepted, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelLow, nil
	case "m", "medium":
		return LevelMedium, nil
	case "q", "quart", "quartile":
		return LevelQuartile, nil
	case "h", "high":
		return LevelHigh, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidLevel, "invalid error-correction level: %q (must be low, medium, quartile or high)", s)
	}
}

func (l Level) option() (qrcode.EncodeOption, error) {
	switch l {
	case LevelLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow), nil
	case LevelMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium), nil
	case LevelQuartile:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart), nil
	case LevelHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidLevel, "invalid error-correction level: %q", string(l))
	}
}

// Encode builds the QR symbol for text at the given level.
//
// Empty text is an INVALID_INPUT error. Text the encoder cannot fit into any
// symbol version, or rejects for another reason, is an ENCODE_FAILED error.
func Encode(text string, level Level) (*grid.Bitmap, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "text to encode cannot be empty")
	}
	opt, err := level.option()
	if err != nil {
		return nil, err
	}

	code, err := qrcode.NewWith(text, opt)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode %d bytes at level %s", len(text), level)
	}

	var c matrixCapture
	if err := code.Save(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "capture matrix")
	}
	return c.grid, nil
}

// matrixCapture is a qrcode.Writer that copies the symbol matrix into a grid.
type matrixCapture struct {
	grid *grid.Bitmap
}

func (c *matrixCapture) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	if h := mat.Height(); h != n {
		return errors.New(errors.ErrCodeInternal, "matrix is not square: %dx%d", n, h)
	}

	rows := make([][]bool, n)
	for y := range rows {
		rows[y] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		rows[y][x] = v.IsSet()
	})

	g, err := grid.FromRows(rows)
	if err != nil {
		return err
	}
	c.grid = g
	return nil
}

func (c *matrixCapture) Close() error { return nil }

// Ensure matrixCapture implements qrcode.Writer.
var _ qrcode.Writer = (*matrixCapture)(nil)
