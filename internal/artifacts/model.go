package artifacts

import "time"

// Kind selects one of the four per-session artifact collections.
type Kind int

const (
	KindDocument Kind = iota
	KindRendition
	KindSignature
	KindHistory
)

var kinds = []Kind{KindDocument, KindRendition, KindSignature, KindHistory}

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindRendition:
		return "rendition"
	case KindSignature:
		return "signature"
	case KindHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Artifact is one generated agreement: its working document and PDF.
type Artifact struct {
	Filename      string `json:"filename"`
	DocumentPath  string `json:"-"`
	RenditionPath string `json:"-"`
	Pages         int    `json:"pages,omitempty"`
}

// SignaturesAdded records which sides signed a submission.
type SignaturesAdded struct {
	Chervic  bool `json:"chervic"`
	Customer bool `json:"customer"`
}

// Changes summarizes one submission.
type Changes struct {
	FieldsUpdated   map[string]string `json:"fields_updated"`
	SignaturesAdded SignaturesAdded   `json:"signatures_added"`
}

// HistoryEntry is one append-only edit-history record.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Changes   Changes   `json:"changes"`
}

// HistoryFileName is the on-disk log name for an artifact.
func HistoryFileName(artifact string) string {
	return artifact + "_history.json"
}
