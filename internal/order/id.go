package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateOrderID produces an identifier of the form
// ORDER_<unix-millis>_<9 random base36 chars>. Uniqueness is best-effort:
// no store lookup guards against the (negligible) collision window.
func GenerateOrderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idAlphabet))))
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(idAlphabet)))
		}
		suffix[i] = idAlphabet[n.Int64()]
	}

	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), suffix)
}
