package ftsengine

// Document is the unit of content the engine indexes and retrieves.
//
// Id is the opaque, non-empty primary key supplied by the caller — the
// engine never generates ids itself. URL and Metadata are optional; Metadata
// is carried through storage unchanged and never analyzed or searched.
type Document struct {
	ID       string
	Title    string
	Content  string
	URL      string
	Metadata map[string]string
}

// SearchableText is the text the analyzer runs over: title and content,
// space-joined, in that order. Metadata and URL are never searched.
func (d Document) SearchableText() string {
	if d.Title == "" {
		return d.Content
	}
	if d.Content == "" {
		return d.Title
	}
	return d.Title + " " + d.Content
}

// DocStats records the per-document statistics the ranker needs: how many
// analyzed terms the document has, and how often each one occurs. One
// DocStats exists for exactly as long as its Document is live in the engine.
type DocStats struct {
	ID        string
	Length    int
	TermFreqs map[string]int
}

// CorpusStats summarizes the live document set.
type CorpusStats struct {
	DocumentCount int
	TotalTerms    int64
	AvgDocLength  float64
}
