package domain

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// UnknownSite is shown when neither a domain nor a usable URL is known.
const UnknownSite = "your website"

// SiteDomain returns the analysis domain, or the registrable domain of its URL
// when the scorer did not record one.
func (a Analysis) SiteDomain() string {
	if d := strings.TrimSpace(a.Domain); d != "" {
		return d
	}
	return RegistrableDomain(a.URL)
}

// RegistrableDomain reduces a URL or bare host to eTLD+1 ("www.shop.example.co.uk"
// becomes "example.co.uk"). Hosts without a public suffix are returned as is.
func RegistrableDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownSite
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return UnknownSite
	}
	host := strings.ToLower(u.Hostname())
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld1
	}
	return host
}
