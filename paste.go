package main

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/net/html"
)

// readClipboardText is a variable so tests can avoid the system clipboard.
var readClipboardText = clipboard.ReadAll

// rtfToken matches an escaped literal, a hex-encoded Latin-1 byte, a
// control word with its optional numeric argument and delimiter, any other
// escape, or a group brace.
var rtfToken = regexp.MustCompile(`\\[\\{}]|\\'[0-9a-fA-F]{2}|\\[A-Za-z]+-?\d* ?|\\.|[{}]`)

// lineBreakTags separate words when markup is flattened.
var lineBreakTags = map[string]bool{
	"br": true, "div": true, "p": true, "li": true, "tr": true, "td": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// pasteValue turns clipboard contents into a single-line property value.
// Rich text and HTML are reduced to their text, line breaks become spaces
// and runs of whitespace collapse.
func pasteValue(raw string) string {
	text := raw
	switch {
	case strings.HasPrefix(strings.TrimSpace(text), `{\rtf`):
		text = plainFromRTF(text)
	case strings.HasPrefix(strings.TrimSpace(text), "<"):
		if plain, ok := plainFromHTML(text); ok {
			text = plain
		}
	}

	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < ' ' || r == 0x7f:
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

func plainFromRTF(text string) string {
	return rtfToken.ReplaceAllStringFunc(text, func(tok string) string {
		switch {
		case len(tok) == 2 && strings.ContainsRune(`\{}`, rune(tok[1])):
			return tok[1:]
		case strings.HasPrefix(tok, `\'`):
			b, err := strconv.ParseUint(tok[2:], 16, 8)
			if err != nil {
				return ""
			}
			return string(rune(b))
		}
		return ""
	})
}

// plainFromHTML reports false when text holds no tags at all, so a value
// that merely starts with '<' is kept as typed.
func plainFromHTML(text string) (string, bool) {
	var b strings.Builder
	sawTag := false
	skip := 0
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF || !sawTag {
				return "", false
			}
			return b.String(), true
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			sawTag = true
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip++
				} else if skip > 0 {
					skip--
				}
			}
			if lineBreakTags[tag] {
				b.WriteByte(' ')
			}
		}
	}
}
