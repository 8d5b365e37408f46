package locale

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

type ctxKey struct{}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(Supported))
	for _, l := range Supported {
		tags = append(tags, language.MustParse(l))
	}
	return tags
}

// Parse matches an Accept-Language header value (or a single tag) against the
// supported languages. Anything unknown or malformed maps to DefaultLang.
func Parse(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}
	return Supported[idx]
}

// IsSupported reports whether lang is one of the supported language codes.
func IsSupported(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// WithLang returns a copy of ctx carrying lang. Unsupported values are replaced with DefaultLang.
func WithLang(ctx context.Context, lang string) context.Context {
	if !IsSupported(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, ctxKey{}, strings.ToLower(strings.TrimSpace(lang)))
}

// FromContext returns the request language, or DefaultLang if none was set.
func FromContext(ctx context.Context) string {
	lang, ok := ctx.Value(ctxKey{}).(string)
	if !ok || lang == "" {
		return DefaultLang
	}
	return lang
}
