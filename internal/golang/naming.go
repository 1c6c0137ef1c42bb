package golang

import (
	"strings"
	"unicode"
)

var commonInitialisms = []string{
	"API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS",
	"ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP",
	"SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI", "UID", "UUID", "URI",
	"URL", "UTF8", "VM", "XML", "XMPP", "XSRF", "XSS", "CVV",
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// Namer turns OpenAPI names (operation ids, parameter and schema names) into
// Go identifiers. Each Namer owns its initialism set, so several can be used
// side by side.
type Namer struct {
	initialisms map[string]bool
}

// NewNamer returns a Namer that knows the common Go initialisms plus additional.
func NewNamer(additional ...string) *Namer {
	n := &Namer{initialisms: make(map[string]bool, len(commonInitialisms)+len(additional))}
	for _, s := range commonInitialisms {
		n.initialisms[s] = true
	}
	for _, s := range additional {
		n.initialisms[strings.ToUpper(s)] = true
	}
	return n
}

// Exported returns the PascalCase form of s, e.g. "get_pets_by_id" -> "GetPetsByID".
func (n *Namer) Exported(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		b.WriteString(n.word(word))
	}
	return b.String()
}

// Unexported returns the camelCase form of s, e.g. "petId" -> "petID".
func (n *Namer) Unexported(s string) string {
	var b strings.Builder
	for i, word := range splitWords(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(n.word(word))
	}
	return b.String()
}

// Identifier is Exported, made safe to start a Go identifier.
func (n *Namer) Identifier(s string) string {
	result := n.Exported(s)
	if result == "" {
		return "X"
	}
	if unicode.IsDigit(rune(result[0])) {
		return "X" + result
	}
	return result
}

// Param is Unexported with Go keywords escaped, for argument names.
func (n *Namer) Param(s string) string {
	result := n.Unexported(s)
	if goKeywords[result] {
		return result + "_"
	}
	return result
}

func (n *Namer) word(w string) string {
	upper := strings.ToUpper(w)
	if n.initialisms[upper] {
		return upper
	}
	return capitalize(w)
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()

	return words
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
