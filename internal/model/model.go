package model

// Document is a handle to one text document in the vault. ID is the
// vault-relative slash path and doubles as the stable document identifier in
// task locators; Path is the absolute filesystem path.
type Document struct {
	ID   string `json:"id"`
	Path string `json:"-"`
}

// Task is one checklist line lifted out of a document.
//
// Text never contains the leading checkbox marker. DocumentID+LineNumber is a
// best-effort locator: it is unique within one extraction pass but goes stale
// when the document gains or loses lines, so it must be re-validated against
// the document before any mutation.
type Task struct {
	Text       string `json:"text"`
	Completed  bool   `json:"completed"`
	DocumentID string `json:"document"`
	LineNumber int    `json:"line"` // 1-based
}
