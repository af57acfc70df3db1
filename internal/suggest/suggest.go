// Package suggest derives the suggestion list shown under a search field.
package suggest

import "strings"

// DefaultDomains are the providers offered when completing an email address.
var DefaultDomains = []string{
	"gmail.com", "naver.com", "yahoo.com", "hotmail.com",
	"outlook.com", "daum.net", "kakao.com", "icloud.com",
}

// Filter keeps candidates whose lowercase form contains the lowercase value,
// dropping exact matches of value. Order is preserved and candidates is not
// modified.
func Filter(candidates []string, value string) []string {
	needle := strings.ToLower(value)
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == value {
			continue
		}
		if strings.Contains(strings.ToLower(candidate), needle) {
			out = append(out, candidate)
		}
	}
	return out
}

// EmailDomains completes a partial address against domains. Values that are
// empty or already contain an @ yield nil.
func EmailDomains(value string, domains []string) []string {
	if value == "" || strings.Contains(value, "@") {
		return nil
	}
	out := make([]string, len(domains))
	for i, domain := range domains {
		out[i] = value + "@" + domain
	}
	return out
}
