package extract

import (
    "regexp"
    "strings"
    "unicode"
)

// tagPattern matches a markup span from '<' to the nearest following '>'.
// This is a textual heuristic, not an XML parser: it has no notion of
// nesting, CDATA or escaped brackets, and '.' does not cross a newline, so
// a tag that spans lines is left in place. Changing it changes output.
var tagPattern = regexp.MustCompile(`<.*?>`)

// FromDocumentXML turns the raw text of a document body part into a single
// line of plain text: markup spans become spaces, then whitespace is
// collapsed.
func FromDocumentXML(body string) string {
    return NormalizeWhitespace(StripTags(body))
}

// StripTags replaces every <...> span with a single space.
func StripTags(s string) string {
    return tagPattern.ReplaceAllLiteralString(s, " ")
}

// NormalizeWhitespace splits s on whitespace runs and rejoins the tokens with
// one space. Leading and trailing whitespace is dropped.
func NormalizeWhitespace(s string) string {
    return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace reports Unicode white space plus the ASCII file, group, record and
// unit separators, which many split-on-whitespace routines also treat as
// breaks.
func isSpace(r rune) bool {
    if r >= 0x1c && r <= 0x1f {
        return true
    }
    return unicode.IsSpace(r)
}
