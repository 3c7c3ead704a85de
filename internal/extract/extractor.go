package extract

// Extractor converts the decoded text of a document body part into the plain
// text written to a sidecar file. Implementations must be deterministic so
// repeated runs over unchanged inputs produce identical output.
type Extractor interface {
    Extract(body string) string
}

// HeuristicExtractor uses FromDocumentXML: regex tag stripping followed by
// whitespace normalization.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Extract(body string) string {
    return FromDocumentXML(body)
}
