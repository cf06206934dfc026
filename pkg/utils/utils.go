package utils

import "strings"

func TruncateString(str string, num int) string {
	if len(str) <= num {
		return str
	}
	if num <= 3 {
		return str[:num]
	}
	return str[0:num-3] + "..."
}

// GroupDigits inserts sep every three digits from the right inside each run
// of ASCII digits that ends at a word boundary. Runs followed by a letter,
// digit or underscore are left alone.
func GroupDigits(s, sep string) string {
	if len(s) == 0 || sep == "" {
		return s
	}

	var result strings.Builder
	i := 0
	for i < len(s) {
		if !isDigit(s[i]) {
			result.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		run := s[i:j]
		if j < len(s) && isWordChar(s[j]) {
			result.WriteString(run)
			i = j
			continue
		}

		n := len(run)
		remainder := n % 3
		if remainder > 0 {
			result.WriteString(run[:remainder])
		}
		for k := remainder; k < n; k += 3 {
			if k > 0 {
				result.WriteString(sep)
			}
			result.WriteString(run[k : k+3])
		}
		i = j
	}
	return result.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordChar(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
