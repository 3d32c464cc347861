package prices

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unknown is spoken when a price is missing or not positive.
const Unknown = "desconocido"

// InPesos renders an amount as "$<pesos>.<two-digit cents>". Cents are
// derived from the decimal string representation and truncated, never
// rounded, so $21.789 reads as $21.78. Zero and negative amounts have no
// meaning as prices and render as Unknown.
func InPesos(amount float64) string {
	if amount <= 0 {
		return Unknown
	}

	parts := strings.SplitN(strconv.FormatFloat(amount, 'f', -1, 64), ".", 2)
	pesos := parts[0]

	cents := "00"
	if len(parts) > 1 {
		frac, err := strconv.ParseFloat("0."+parts[1], 64)
		if err != nil {
			return Unknown
		}
		cents = fmt.Sprintf("%02d", int(math.Floor(frac*100)))
	}

	return "$" + pesos + "." + cents
}

// InPesosPtr is InPesos for optional prices; nil renders as Unknown.
func InPesosPtr(amount *float64) string {
	if amount == nil {
		return Unknown
	}
	return InPesos(*amount)
}
