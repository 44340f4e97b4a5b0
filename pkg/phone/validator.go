package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ValidationResult contains the result of phone number validation.
type ValidationResult struct {
	IsValid        bool   `json:"is_valid"`
	E164Format     string `json:"e164_format"`
	NationalFormat string `json:"national_format"`
	AreaCode       string `json:"area_code"`
	IsMobile       bool   `json:"is_mobile"`
}

// ValidateBR validates a Brazilian phone number given separately as DDD
// (area code) and local number, the shape leads carry.
func ValidateBR(ddd, number string) (*ValidationResult, error) {
	if number == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}

	raw := strings.TrimSpace(ddd) + strings.TrimSpace(number)

	parsed, err := phonenumbers.Parse(raw, "BR")
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	isValid := phonenumbers.IsValidNumber(parsed)
	numberType := phonenumbers.GetNumberType(parsed)

	return &ValidationResult{
		IsValid:        isValid,
		E164Format:     phonenumbers.Format(parsed, phonenumbers.E164),
		NationalFormat: phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		AreaCode:       strings.TrimSpace(ddd),
		IsMobile:       numberType == phonenumbers.MOBILE || numberType == phonenumbers.FIXED_LINE_OR_MOBILE,
	}, nil
}

// IsValidBR reports whether the DDD plus local number form a valid
// Brazilian phone number.
func IsValidBR(ddd, number string) bool {
	result, err := ValidateBR(ddd, number)
	if err != nil {
		return false
	}
	return result.IsValid
}
