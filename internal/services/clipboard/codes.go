package clipboard

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strconv"
)

const (
	shareCodeMin     = 1000
	shareCodeSpan    = 9000
	shareCodeSymbols = "!@#$%^&*?"

	viewCodeMin  = 10000
	viewCodeSpan = 90000
)

// generateShareCode returns 4 digits followed by one special character, e.g. "4821#".
func generateShareCode() string {
	digits := shareCodeMin + randomInt(shareCodeSpan)
	symbol := shareCodeSymbols[randomInt(len(shareCodeSymbols))]
	return strconv.Itoa(digits) + string(symbol)
}

// generateViewCode returns a 5-digit code in [10000, 99999].
func generateViewCode() string {
	return strconv.Itoa(viewCodeMin + randomInt(viewCodeSpan))
}

func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic("clipboard: crypto/rand unavailable: " + err.Error())
	}
	return int(v.Int64())
}

func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
