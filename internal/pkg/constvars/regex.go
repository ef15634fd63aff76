package constvars

const (
	RegexContainAtLeastOneUppercase = `.*[A-Z].*`
	RegexContainAtLeastOneDigit     = `.*[0-9].*`
	// RegexSimpleEmail is a loose two-part pattern: something@something.something.
	RegexSimpleEmail = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)
