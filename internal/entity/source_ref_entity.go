package entity

// SourceRefKind discriminates the two wire shapes a source can arrive in.
// The shape is resolved once, at the orchestration boundary; everything
// downstream switches on Kind, never on raw payload shape.
type SourceRefKind string

const (
	// SourceDisplayOnly carries a bare name (legacy contract); it renders
	// as a non-interactive label.
	SourceDisplayOnly SourceRefKind = "display"

	// SourceInteractive carries an absolute path and can be opened or
	// previewed.
	SourceInteractive SourceRefKind = "interactive"
)

// SourceRef is backend-supplied provenance for a generated answer.
// Path is set iff Kind == SourceInteractive, and is always absolute
// (POSIX or drive-letter form). The path is never transformed here.
type SourceRef struct {
	Kind SourceRefKind `json:"kind"`
	Name string        `json:"name"`
	Path string        `json:"path,omitempty"`
}
