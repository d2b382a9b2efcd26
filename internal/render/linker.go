package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// issueRefPattern matches issue references like #123. The optional leading
// & keeps numeric character entities such as &#39; from being read as
// references in already-escaped HTML.
var issueRefPattern = regexp.MustCompile(`&?#\d+`)

// Linker rewrites issue references like #123 into links against a fixed
// URL prefix. The zero Linker leaves text untouched.
type Linker struct {
	urlPrefix string
}

// NewLinker returns a linker for the given URL prefix. The issue number is
// appended to the prefix, so "https://tracker.example.com/issues/" links
// #42 to https://tracker.example.com/issues/42.
func NewLinker(urlPrefix string) Linker {
	return Linker{urlPrefix: urlPrefix}
}

// replaceRefs rewrites each issue reference through wrap. Matches that are
// part of a character entity stay unchanged, and wrap receives the number
// directly, so the prefix is never expanded as a replacement template.
func replaceRefs(s string, wrap func(ref, number string) string) string {
	return issueRefPattern.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "&") {
			return m
		}
		return wrap(m, m[1:])
	})
}

// Markdown rewrites issue references as markdown links.
func (l Linker) Markdown(s string) string {
	if l.urlPrefix == "" {
		return s
	}
	return replaceRefs(s, func(ref, number string) string {
		return fmt.Sprintf("[%s](%s%s)", ref, l.urlPrefix, number)
	})
}

// HTML rewrites issue references as anchors. The input must already be
// HTML-escaped; entities the escaping emits, like &#39;, stay untouched.
func (l Linker) HTML(s string) string {
	if l.urlPrefix == "" {
		return s
	}
	href := html.EscapeString(l.urlPrefix)
	return replaceRefs(s, func(ref, number string) string {
		return fmt.Sprintf(`<a href="%s%s">%s</a>`, href, number, ref)
	})
}
