package formatter

import "strings"

// Render substitutes tokens in template. A token is "%%", which renders a
// single percent sign, or a percent sign followed by one or more ASCII
// letters, digits or underscores. Other tokens are looked up in subs by
// their full text ("%appName"); a key without the percent sign never
// matches. Tokens with no value are copied unchanged, as is a percent sign
// that does not start a token.
func Render(template string, subs map[string]string) string {
	// Fast path: nothing to substitute
	if strings.IndexByte(template, '%') < 0 {
		return template
	}

	buf := getBuffer()
	defer putBuffer(buf)

	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			buf.WriteByte(c)
			i++
			continue
		}

		if i+1 < len(template) && template[i+1] == '%' {
			buf.WriteByte('%')
			i += 2
			continue
		}

		j := i + 1
		for j < len(template) && isTokenChar(template[j]) {
			j++
		}
		if j == i+1 {
			// bare '%'
			buf.WriteByte('%')
			i++
			continue
		}

		token := template[i:j]
		if v, ok := subs[token]; ok {
			buf.WriteString(v)
		} else {
			buf.WriteString(token)
		}
		i = j
	}

	return buf.String()
}

func isTokenChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
