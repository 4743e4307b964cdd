package entity

// Format is the MIME-type-derived tag that selects an extraction strategy.
// Only the six formats in the registry below are ever extracted.
type Format string

const (
	FormatGoogleDoc Format = "application/vnd.google-apps.document"
	FormatPlainText Format = "text/plain"
	FormatCSV       Format = "text/csv"
	FormatPDF       Format = "application/pdf"
	FormatMarkdown  Format = "text/markdown"
	FormatWordDoc   Format = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var formatNames = map[Format]string{
	FormatGoogleDoc: "Google Docs",
	FormatPlainText: "Text File",
	FormatCSV:       "CSV File",
	FormatPDF:       "PDF File",
	FormatMarkdown:  "Markdown File",
	FormatWordDoc:   "Word Document",
}

// supportedFormats fixes the registry order used when a search does not
// specify a format filter.
var supportedFormats = []Format{
	FormatGoogleDoc,
	FormatPlainText,
	FormatCSV,
	FormatPDF,
	FormatMarkdown,
	FormatWordDoc,
}

// DisplayName returns the human-readable name of the format, or "Unknown"
// for MIME types outside the registry.
func (f Format) DisplayName() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Unknown"
}

// Supported reports whether the format is in the extraction registry.
func (f Format) Supported() bool {
	_, ok := formatNames[f]
	return ok
}

// SupportedFormats returns the full format registry in a stable order.
func SupportedFormats() []Format {
	out := make([]Format, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// FileRecord is an immutable metadata snapshot from a single Drive listing
// call. Records are never cached across queries.
type FileRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Format       Format `json:"mime_type"`
	SizeBytes    int64  `json:"size,omitempty"`
	ModifiedTime string `json:"modified_time,omitempty"`
	CreatedTime  string `json:"created_time,omitempty"`
	ViewURL      string `json:"view_url,omitempty"`
}

// ExtractedContent is the normalized text pulled from one file.
type ExtractedContent struct {
	SourceFileID   string
	NormalizedText string
	OriginalLength int
}

// SourceRef identifies a file whose content was consumed in a response.
type SourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// ContextBundle is the assembled context for one query: the concatenated
// per-file sections plus the ordered source manifest. It lives for a single
// request and is discarded after being handed to the LLM connector.
type ContextBundle struct {
	CombinedText string
	Sources      []SourceRef
}

// Empty reports whether the bundle carries no usable context.
func (b ContextBundle) Empty() bool {
	return b.CombinedText == "" && len(b.Sources) == 0
}
