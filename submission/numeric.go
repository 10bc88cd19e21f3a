package submission

import (
	"math"
	"strconv"
	"strings"
)

// Coerce classifies a string leaf as an integer, a float, or a string, in
// that order, first match wins:
//
//  1. A base-10 signed 64-bit integer yields [KindInt].
//  2. A 64-bit float (standard grammar, including exponents, Inf, and NaN,
//     case-insensitive) yields [KindFloat] — except NaN, which yields
//     IntValue(0). That mapping is a legacy contract downstream consumers
//     depend on; it does not extend to infinities.
//  3. Anything else is returned unchanged as [KindString].
func Coerce(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i)
	}

	if f, ok := parseLegacyFloat(s); ok {
		if math.IsNaN(f) {
			return IntValue(0)
		}

		return FloatValue(f)
	}

	return StringValue(s)
}

// parseLegacyFloat parses s with the decimal float grammar the upstream
// system accepts. strconv additionally accepts hex mantissas and digit
// separators; those forms are not numbers here.
func parseLegacyFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
