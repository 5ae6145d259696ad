// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import (
	"regexp"
	"strings"

	"imoguru/internal/models"
)

// FormatMode selects the output shape of a substituted template.
type FormatMode int

const (
	// FormatHTML passes the substituted content through unchanged.
	// Email and print surfaces render it as markup.
	FormatHTML FormatMode = iota

	// FormatPlainText converts the content to plain text with the
	// lightweight markdown chat platforms understand.
	FormatPlainText
)

// The conversion regexps run in a fixed order: markdown-style conversions
// first, then structural breaks, then the generic tag strip. Reordering
// them would delete the tag text instead of transforming it.
var (
	anchorRe = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	boldRe   = regexp.MustCompile(`(?is)<(?:strong|b)(?:\s[^>]*)?>(.*?)</(?:strong|b)>`)
	italicRe = regexp.MustCompile(`(?is)<(?:em|i)(?:\s[^>]*)?>(.*?)</(?:em|i)>`)
	strikeRe = regexp.MustCompile(`(?is)<(?:s|strike)(?:\s[^>]*)?>(.*?)</(?:s|strike)>`)
	brRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	pCloseRe = regexp.MustCompile(`(?i)</p>`)
	liOpenRe = regexp.MustCompile(`(?i)<li(?:\s[^>]*)?>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	multiNL  = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer decodes the handful of entities templates actually use.
// A single-pass Replacer so "&amp;lt;" decodes once, not twice.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&amp;", "&",
)

// ToChannelFormat normalizes substituted template HTML for the target
// surface. FormatHTML is a pass-through; FormatPlainText applies the
// ordered transform chain and is idempotent — once the tags are gone a
// second pass changes nothing.
func ToChannelFormat(html string, mode FormatMode) string {
	if mode == FormatHTML {
		return html
	}

	out := anchorRe.ReplaceAllString(html, "$2 ($1)")
	out = boldRe.ReplaceAllString(out, "*$1*")
	// ${1} because a bare $1 before "_" would parse as the group name "1_".
	out = italicRe.ReplaceAllString(out, "_${1}_")
	out = strikeRe.ReplaceAllString(out, "~$1~")
	out = brRe.ReplaceAllString(out, "\n")
	out = pCloseRe.ReplaceAllString(out, "\n\n")
	out = liOpenRe.ReplaceAllString(out, "\n• ")
	out = tagRe.ReplaceAllString(out, "")
	out = entityReplacer.Replace(out)
	out = multiNL.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// PlatformFormat maps a platform to the format its surface consumes.
func PlatformFormat(p models.Platform) FormatMode {
	if p.PlainText() {
		return FormatPlainText
	}
	return FormatHTML
}
