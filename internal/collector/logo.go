package collector

import "strings"

// subdomainPrefixes are stripped before querying the logo-by-domain service;
// investor-relations subdomains usually break the lookup.
var subdomainPrefixes = []string{"www.", "ir.", "investors.", "investor.", "corporate."}

// Domain extracts the bare host from a company website URL.
func Domain(website string) string {
	if website == "" {
		return ""
	}
	d := strings.ToLower(website)
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.Index(d, "/"); i >= 0 {
		d = d[:i]
	}
	return d
}

// LogoURL derives a best-effort logo URL from a company website using the
// Clearbit logo-by-domain service. Returns "" when no website is known.
func LogoURL(website string) string {
	domain := Domain(website)
	if domain == "" {
		return ""
	}
	for _, prefix := range subdomainPrefixes {
		if strings.HasPrefix(domain, prefix) {
			domain = strings.TrimPrefix(domain, prefix)
			break
		}
	}
	return "https://logo.clearbit.com/" + domain
}
