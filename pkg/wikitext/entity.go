// entity.go implements bounded-lookahead recognition of HTML character references.
package wikitext

// maxEntityBody caps the length of an entity body (between '&' and ';').
// Anything longer is escaped rather than preserved.
const maxEntityBody = 10

// namedEntities is the allow-list of named character references that the
// sanitizer preserves. Lookup is case-sensitive; extending the list does
// not change sanitizer semantics.
var namedEntities = map[string]struct{}{
	"nbsp": {}, "lt": {}, "gt": {}, "amp": {}, "quot": {}, "apos": {},
	"copy": {}, "reg": {}, "trade": {},
	"ndash": {}, "mdash": {}, "lsquo": {}, "rsquo": {}, "ldquo": {}, "rdquo": {},
	"hellip": {}, "prime": {}, "Prime": {},
	"euro": {}, "yen": {}, "pound": {}, "cent": {},
	"sect": {}, "para": {}, "deg": {}, "micro": {}, "middot": {},
	"laquo": {}, "raquo": {},
	"times": {}, "divide": {}, "plusmn": {}, "minus": {},
	"frac12": {}, "frac14": {}, "frac34": {},
	"sup1": {}, "sup2": {}, "sup3": {},
	"alpha": {}, "beta": {}, "gamma": {}, "delta": {}, "epsilon": {},
	"zeta": {}, "eta": {}, "theta": {}, "iota": {}, "kappa": {},
	"lambda": {}, "mu": {}, "nu": {}, "xi": {}, "omicron": {},
	"pi": {}, "rho": {}, "sigma": {}, "sigmaf": {}, "tau": {},
	"upsilon": {}, "phi": {}, "chi": {}, "psi": {}, "omega": {},
	"Alpha": {}, "Beta": {}, "Gamma": {}, "Delta": {}, "Epsilon": {},
	"Zeta": {}, "Eta": {}, "Theta": {}, "Iota": {}, "Kappa": {},
	"Lambda": {}, "Mu": {}, "Nu": {}, "Xi": {}, "Omicron": {},
	"Pi": {}, "Rho": {}, "Sigma": {}, "Tau": {},
	"Upsilon": {}, "Phi": {}, "Chi": {}, "Psi": {}, "Omega": {},
}

// matchEntity reports whether the text at pos (which must point at '&')
// begins a recognized HTML character reference terminated by ';'.
// It returns the total length of the reference including '&' and ';'.
// The scan is bounded by maxEntityBody, so cost per '&' is constant.
func matchEntity(s string, pos int) (bool, int) {
	i := pos + 1 // skip '&'
	start := i
	for i < len(s) {
		c := s[i]
		if c == ';' {
			if isValidEntityBody(s[start:i]) {
				return true, i - pos + 1
			}
			return false, 0
		}
		if i-start >= maxEntityBody {
			return false, 0
		}
		if !isEntityBodyChar(c) {
			return false, 0
		}
		i++
	}
	return false, 0
}

func isEntityBodyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '#':
		return true
	}
	return false
}

// isValidEntityBody validates the entity body (text between '&' and ';').
func isValidEntityBody(body string) bool {
	if body == "" {
		return false
	}

	// Numeric references: &#123; and &#x7B; / &#X7B;
	if body[0] == '#' {
		if len(body) < 2 {
			return false
		}
		if body[1] == 'x' || body[1] == 'X' {
			if len(body) < 3 {
				return false
			}
			return allHexDigits(body[2:])
		}
		return allDigits(body[1:])
	}

	_, ok := namedEntities[body]
	return ok
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
