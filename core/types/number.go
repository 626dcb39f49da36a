package types

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// jsonNumberPattern is the JSON number grammar; apd alone would also accept NaN and Infinity.
var jsonNumberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Number is a JSON number kept as exact decimal text.
//
// The float flag records whether the source text was written as a floating-point
// literal (it had a fraction or an exponent). Integers and floats therefore stay
// distinguishable, which precision rounding depends on.
type Number struct {
	dec   *apd.Decimal
	float bool
}

// ParseNumber parses s as a JSON number literal.
func ParseNumber(s string) (Number, error) {
	if !jsonNumberPattern.MatchString(s) {
		return Number{}, errors.Errorf("invalid number literal %q", s)
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Number{}, errors.Wrapf(err, "invalid number literal %q", s)
	}
	return Number{dec: d, float: strings.ContainsAny(s, ".eE")}, nil
}

// MustParseNumber is ParseNumber for literals known to be valid, such as test fixtures.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NewInt returns an integral Number.
func NewInt(i int64) Number {
	return Number{dec: apd.New(i, 0)}
}

// NewFloat returns a floating Number using the shortest decimal text that round-trips f.
func NewFloat(f float64) Number {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		// NaN and infinities have no JSON form
		return Number{dec: apd.New(0, 0), float: true}
	}
	return Number{dec: d, float: true}
}

// NewNumberFromDecimal wraps an existing decimal. The decimal is copied.
func NewNumberFromDecimal(d *apd.Decimal, float bool) Number {
	return Number{dec: new(apd.Decimal).Set(d), float: float}
}

func (n Number) decimal() *apd.Decimal {
	if n.dec == nil {
		return apd.New(0, 0)
	}
	return n.dec
}

// IsFloat reports whether the number was written as a floating-point literal.
func (n Number) IsFloat() bool {
	return n.float
}

// Decimal returns a copy of the underlying decimal.
func (n Number) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(n.decimal())
}

// DecimalPlaces is the number of digits after the decimal point in the literal.
func (n Number) DecimalPlaces() int {
	if exp := n.decimal().Exponent; exp < 0 {
		return int(-exp)
	}
	return 0
}

// String renders the number in plain (non-scientific) notation.
func (n Number) String() string {
	return n.decimal().Text('f')
}

// Float64 converts the number to the nearest float64.
func (n Number) Float64() (float64, error) {
	return n.decimal().Float64()
}

// Int64 converts an integral number to int64. Fractional values are truncated.
func (n Number) Int64() (int64, error) {
	if i, err := n.decimal().Int64(); err == nil {
		return i, nil
	}
	var truncated apd.Decimal
	ctx := apd.BaseContext.WithPrecision(1000)
	ctx.Rounding = apd.RoundDown
	if _, err := ctx.RoundToIntegralValue(&truncated, n.decimal()); err != nil {
		return 0, errors.WithStack(err)
	}
	i, err := truncated.Int64()
	return i, errors.WithStack(err)
}

// Equal reports numeric equality with matching integer/float kind.
func (n Number) Equal(o Number) bool {
	return n.float == o.float && n.decimal().Cmp(o.decimal()) == 0
}

// Literal is String with a ".0" appended to floats that have no fractional digits,
// so the text re-parses as a float.
func (n Number) Literal() string {
	s := n.String()
	if n.float && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// MarshalJSON writes the decimal text in Literal form.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Literal()), nil
}
