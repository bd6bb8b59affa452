package integer

import "strings"

// NumberStyles selects which lexical variations Parse accepts. The bit
// values match the runtime's numeric style flags.
type NumberStyles uint32

// Individual style flags.
const (
	AllowLeadingWhite     NumberStyles = 0x0001
	AllowTrailingWhite    NumberStyles = 0x0002
	AllowLeadingSign      NumberStyles = 0x0004
	AllowTrailingSign     NumberStyles = 0x0008
	AllowParentheses      NumberStyles = 0x0010
	AllowDecimalPoint     NumberStyles = 0x0020
	AllowThousands        NumberStyles = 0x0040
	AllowExponent         NumberStyles = 0x0080
	AllowCurrencySymbol   NumberStyles = 0x0100
	AllowHexSpecifier     NumberStyles = 0x0200
	AllowBinarySpecifier  NumberStyles = 0x0400
	allKnownStyles        NumberStyles = 0x07FF
	unsupportedStyles                  = AllowDecimalPoint | AllowExponent | AllowCurrencySymbol
	whiteStyles                        = AllowLeadingWhite | AllowTrailingWhite
	radixStyles                        = AllowHexSpecifier | AllowBinarySpecifier
)

// Composite styles.
const (
	StyleNone         NumberStyles = 0
	StyleInteger                   = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	StyleHexNumber                 = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	StyleBinaryNumber              = AllowLeadingWhite | AllowTrailingWhite | AllowBinarySpecifier
	StyleNumber                    = StyleInteger | AllowTrailingSign | AllowThousands
)

// Validate reports whether s is a combination the codec accepts.
// Hex and binary styles may only be combined with the white-space flags.
func (s NumberStyles) Validate() error {
	if s&^allKnownStyles != 0 || s&unsupportedStyles != 0 {
		return ErrInvalidStyle
	}
	if s&radixStyles != 0 {
		if s&radixStyles == radixStyles || s&^(radixStyles|whiteStyles) != 0 {
			return ErrInvalidStyle
		}
	}
	return nil
}

var styleNames = []struct {
	flag NumberStyles
	name string
}{
	{AllowLeadingWhite, "AllowLeadingWhite"},
	{AllowTrailingWhite, "AllowTrailingWhite"},
	{AllowLeadingSign, "AllowLeadingSign"},
	{AllowTrailingSign, "AllowTrailingSign"},
	{AllowParentheses, "AllowParentheses"},
	{AllowDecimalPoint, "AllowDecimalPoint"},
	{AllowThousands, "AllowThousands"},
	{AllowExponent, "AllowExponent"},
	{AllowCurrencySymbol, "AllowCurrencySymbol"},
	{AllowHexSpecifier, "AllowHexSpecifier"},
	{AllowBinarySpecifier, "AllowBinarySpecifier"},
}

// String returns the flag names joined with '|', or "None".
func (s NumberStyles) String() string {
	if s == StyleNone {
		return "None"
	}
	var parts []string
	for _, n := range styleNames {
		if s&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseStyles parses a style name such as "Integer", "HexNumber" or a
// '|'-separated list of flag names.
func ParseStyles(text string) (NumberStyles, error) {
	switch strings.ToLower(text) {
	case "", "integer":
		return StyleInteger, nil
	case "none":
		return StyleNone, nil
	case "hexnumber", "hex":
		return StyleHexNumber, nil
	case "binarynumber", "binary":
		return StyleBinaryNumber, nil
	case "number":
		return StyleNumber, nil
	}
	var s NumberStyles
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		found := false
		for _, n := range styleNames {
			if strings.EqualFold(part, n.name) {
				s |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, ErrInvalidStyle
		}
	}
	return s, s.Validate()
}
