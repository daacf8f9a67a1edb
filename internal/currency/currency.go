// Package currency holds the process-wide display currency selection and a
// static exchange-rate table relative to the base currency.
//
// All amounts in the rest of the system are stored in base-currency cents;
// this package only converts and formats them for display. The currency set
// is closed, so every code always has a rate and a symbol and there is no
// fallback path.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"wealthwise/internal/core"
)

type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	JPY Code = "JPY"
	INR Code = "INR"
)

// Base is the canonical denomination all amounts are stored in.
const Base = USD

// rates convert one base unit into the target currency.
var rates = map[Code]float64{
	USD: 1,
	EUR: 0.93,
	JPY: 157,
	INR: 83,
}

var symbols = map[Code]string{
	USD: "$",
	EUR: "€",
	JPY: "¥",
	INR: "₹",
}

var ErrUnknownCurrency = errors.New("unknown currency code")

// ParseCode validates a user-supplied currency code.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := rates[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return c, nil
}

// Codes lists the supported currencies in display order.
func Codes() []Code {
	return []Code{USD, EUR, JPY, INR}
}

// Rate returns the static conversion rate for a code in the closed set.
func Rate(c Code) float64 {
	return rates[c]
}

// Service holds the active display currency. Converted values are never
// cached: every read converts from the base amount with the current rate.
type Service struct {
	mu     sync.RWMutex
	active Code
}

func NewService() *Service {
	return &Service{active: Base}
}

// Active returns the currently selected currency.
func (s *Service) Active() Code {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Set switches the process-wide display currency.
func (s *Service) Set(c Code) error {
	if _, ok := rates[c]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = c
	return nil
}

// ConvertFromBase converts a base-currency amount into the active currency
// as a display value in whole units.
func (s *Service) ConvertFromBase(m core.Money) float64 {
	return m.Units() * Rate(s.Active())
}

// Format converts and renders an amount with the active currency's symbol.
// Currencies without a minor unit (JPY) render zero fraction digits, all
// others two.
func (s *Service) Format(m core.Money) string {
	active := s.Active()
	value := m.Units() * Rate(active)
	return formatValue(active, value)
}

func formatValue(c Code, value float64) string {
	digits := 2
	if c == JPY {
		digits = 0
	}

	neg := math.Signbit(value)
	abs := math.Abs(value)

	fixed := strconv.FormatFloat(abs, 'f', digits, 64)
	intPart := fixed
	fracPart := ""
	if digits > 0 {
		intPart = fixed[:len(fixed)-digits-1]
		fracPart = fixed[len(fixed)-digits:]
	}

	out := symbols[c] + groupThousands(intPart)
	if digits > 0 {
		out += "." + fracPart
	}
	if neg {
		return "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
