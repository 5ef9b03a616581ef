// Package course provides the domain types for assignments, variations,
// modules, and tags, plus content hashing and the shared error taxonomy.
package course

// AssignmentType distinguishes regular assignments from final works.
type AssignmentType string

const (
	TypeAssignment AssignmentType = "assignment"
	TypeFinalWork  AssignmentType = "finalWork"
)

// FileContent classifies what a material file holds.
type FileContent string

const (
	ContentInstruction FileContent = "instruction"
	ContentCode        FileContent = "code"
	ContentData        FileContent = "data"
	ContentResult      FileContent = "result"
)

// FileType classifies how a material file is rendered.
type FileType string

const (
	FileText  FileType = "text"
	FileImage FileType = "image"
	FileCode  FileType = "code"
)

// TagSpace selects one of the two disjoint tag namespaces.
type TagSpace string

const (
	SpaceAssignment TagSpace = "assignment"
	SpaceModule     TagSpace = "module"
)

// FileRecord describes one material file belonging to a variation. Path is
// relative to the course root once the assignment has been persisted.
type FileRecord struct {
	FileName    string      `json:"fileName"`
	Path        string      `json:"path"`
	Solution    bool        `json:"solution"`
	FileContent FileContent `json:"fileContent"`
	ShowStudent bool        `json:"showStudent"`
	FileType    FileType    `json:"fileType"`
}

// ExampleRun is one sample execution shown in the instructions.
type ExampleRun struct {
	Generate  bool     `json:"generate"`
	Inputs    []string `json:"inputs"`
	CmdInputs []string `json:"cmdInputs"`
	Output    string   `json:"output"`
}

// CGConfig references an external grading configuration.
type CGConfig struct {
	ID   string `json:"id"`
	AtV2 bool   `json:"atv2"`
}

// Variation is one concrete instructional branch of an assignment.
type Variation struct {
	Instructions string                `json:"instructions"`
	ExampleRuns  map[string]ExampleRun `json:"exampleRuns"`
	Files        []FileRecord          `json:"files"`
	UsedIn       []string              `json:"usedIn"`
	CGConfig     *CGConfig             `json:"cgConfig,omitempty"`
}

// Assignment is a unit of coursework. ID is the content hash assigned on
// first save and immutable afterwards.
type Assignment struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Type         AssignmentType       `json:"type"`
	Tags         []string             `json:"tags"`
	Module       *int64               `json:"module"`
	Position     []int                `json:"position"`
	Level        *int64               `json:"level"`
	Next         []string             `json:"next"`
	Previous     []string             `json:"previous"`
	CodeLanguage string               `json:"codeLanguage"`
	Variations   map[string]Variation `json:"variations"`
}

// IsExpanding reports whether the assignment links into a multi-part
// sequence. It is always derived from Next/Previous, never stored on its own.
func (a *Assignment) IsExpanding() bool {
	return len(a.Next) > 0 || len(a.Previous) > 0
}

// Module groups assignments and drives the module facet of filtering.
type Module struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Tags         []string `json:"tags"`
	Assignments  int      `json:"assignments"`
	Subjects     string   `json:"subjects"`
	Letters      bool     `json:"letters"`
	Instructions string   `json:"instructions"`
}

// Tag is a derived view of one tag and the IDs of its owners within a space.
type Tag struct {
	Name   string   `json:"name"`
	Owners []string `json:"owners"`
}

// Filter specifies the facets of a filtered assignment query. Tags are OR-ed
// against each other; the facets are AND-ed together. A zero Filter matches
// every assignment.
type Filter struct {
	Tags    []string
	Modules []string
	Title   string
}

// Empty reports whether the filter matches everything.
func (f Filter) Empty() bool {
	return len(f.Tags) == 0 && len(f.Modules) == 0 && f.Title == ""
}
