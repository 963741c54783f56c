package entity

import (
	"regexp"
	"strconv"
	"strings"

	"pesantren/internal/errors"
)

// Contribution validation errors. Callers translate them into the InvalidAmount app error.
var (
	ErrAmountNotSelected  = errors.New("no contribution amount selected")
	ErrAmountNotNumeric   = errors.New("contribution amount is not a whole number")
	ErrAmountNotPositive  = errors.New("contribution amount must be positive")
	ErrAmountBelowMinimum = errors.New("contribution amount is below the minimum")
	ErrPresetOutOfRange   = errors.New("preset amount does not exist")
)

var thousandsGrouping = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// PresetAmount is one fixed choice offered by the unlock dialog.
type PresetAmount struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// AmountMode tells which input of the unlock dialog is active.
type AmountMode int

const (
	AmountModeNone AmountMode = iota
	AmountModePreset
	AmountModeCustom
)

// AmountSelection holds the dialog input. Exactly one of preset or custom is active;
// selecting one clears the other.
type AmountSelection struct {
	mode        AmountMode
	presetIndex int
	custom      string
}

// SelectPreset activates the preset at index and clears any custom entry.
func (s *AmountSelection) SelectPreset(index int) {
	s.mode = AmountModePreset
	s.presetIndex = index
	s.custom = ""
}

// EnterCustom activates custom mode with the raw text and clears the preset.
func (s *AmountSelection) EnterCustom(raw string) {
	s.mode = AmountModeCustom
	s.presetIndex = 0
	s.custom = raw
}

// Mode returns the active input.
func (s AmountSelection) Mode() AmountMode {
	return s.mode
}

// PresetIndex returns the selected preset, or -1 outside preset mode.
func (s AmountSelection) PresetIndex() int {
	if s.mode != AmountModePreset {
		return -1
	}

	return s.presetIndex
}

// Custom returns the raw custom text, empty outside custom mode.
func (s AmountSelection) Custom() string {
	return s.custom
}

// Resolve returns the effective amount for the active input.
func (s AmountSelection) Resolve(presets []PresetAmount) (int64, error) {
	switch s.mode {
	case AmountModePreset:
		if s.presetIndex < 0 || s.presetIndex >= len(presets) {
			return 0, ErrPresetOutOfRange
		}

		return presets[s.presetIndex].Amount, nil
	case AmountModeCustom:
		return ParseAmount(s.custom)
	default:
		return 0, ErrAmountNotSelected
	}
}

// ParseAmount parses a custom amount such as "25000", "Rp 25.000" or "25.000".
// Anything that is not a whole number is rejected.
func ParseAmount(raw string) (int64, error) {
	text := strings.TrimSpace(raw)
	if len(text) >= 2 && strings.EqualFold(text[:2], "rp") {
		text = strings.TrimSpace(text[2:])
	}
	if thousandsGrouping.MatchString(text) {
		text = strings.ReplaceAll(text, ".", "")
	}
	if text == "" {
		return 0, ErrAmountNotNumeric
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, ErrAmountNotNumeric
		}
	}

	amount, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrAmountNotNumeric, err.Error())
	}

	return amount, nil
}

// ValidateContribution checks amount against the lesson minimum.
func ValidateContribution(amount, minimum int64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	if amount < minimum {
		return ErrAmountBelowMinimum
	}

	return nil
}
