package currency

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

// defaultRates is the static fallback: approximate USD-per-unit rates
// used until a live refresh has ever succeeded. Values are deliberately
// coarse; they exist so conversion always answers.
var defaultRates = map[string]float64{
	"USD": 1,
	"EUR": 1.09,
	"GBP": 1.27,
	"CHF": 1.13,
	"CAD": 0.74,
	"AUD": 0.66,
	"NZD": 0.61,
	"JPY": 0.0067,
	"CNY": 0.14,
	"INR": 0.012,
	"SGD": 0.74,
	"SEK": 0.095,
	"NOK": 0.094,
	"PLN": 0.25,
	"ZAR": 0.053,
}

// DefaultRates returns a copy of the built-in fallback table.
func DefaultRates() map[string]float64 {
	rates := make(map[string]float64, len(defaultRates))
	for code, rate := range defaultRates {
		rates[code] = rate
	}
	return rates
}

type staticRatesFile struct {
	Base  string             `yaml:"base"`
	Rates map[string]float64 `yaml:"rates"`
}

// LoadStaticRates reads a YAML fallback table:
//
//	base: USD
//	rates:
//	  EUR: 1.09
//	  GBP: 1.27
//
// Unknown ISO codes and non-positive rates are rejected so a typo in the
// file cannot poison every conversion.
func LoadStaticRates(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	var f staticRatesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse rates file: %w", err)
	}
	if len(f.Rates) == 0 {
		return nil, fmt.Errorf("rates file %s defines no rates", path)
	}
	rates := make(map[string]float64, len(f.Rates)+1)
	for code, rate := range f.Rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if money.GetCurrency(code) == nil {
			return nil, fmt.Errorf("rates file %s: unknown currency code %q", path, code)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("rates file %s: rate for %s must be positive", path, code)
		}
		rates[code] = rate
	}
	base := strings.ToUpper(strings.TrimSpace(f.Base))
	if base == "" {
		base = DefaultBase
	}
	rates[base] = 1
	return rates, nil
}
