// Package action maps parsed command-line input onto what mdb should do and
// carries it out.
package action

// NamedKind says which parts of a Named are set.
type NamedKind int

const (
	// NamedDefault uses the default template and its name source.
	NamedDefault NamedKind = iota
	// NamedName uses the default template with an explicit note name.
	NamedName
	// NamedTemplate uses a specific template and its name source.
	NamedTemplate
	// NamedTemplateWithName uses a specific template and an explicit name.
	NamedTemplateWithName
)

func (k NamedKind) String() string {
	switch k {
	case NamedName:
		return "name"
	case NamedTemplate:
		return "template"
	case NamedTemplateWithName:
		return "template+name"
	default:
		return "default"
	}
}

// Named is the template and note name the user asked for. Template and Name
// are only meaningful for the kinds that carry them.
type Named struct {
	Kind     NamedKind
	Template string
	Name     string
}

// Default selects the default template and its name source.
func Default() Named { return Named{Kind: NamedDefault} }

// Name selects the default template with an explicit note name.
func Name(name string) Named { return Named{Kind: NamedName, Name: name} }

// Template selects template id and its name source.
func Template(id string) Named { return Named{Kind: NamedTemplate, Template: id} }

// TemplateWithName selects template id with an explicit note name.
func TemplateWithName(id, name string) Named {
	return Named{Kind: NamedTemplateWithName, Template: id, Name: name}
}

// NewNamed builds a Named from the optional template and name arguments.
func NewNamed(template, name *string) Named {
	switch {
	case template != nil && name != nil:
		return TemplateWithName(*template, *name)
	case template != nil:
		return Template(*template)
	case name != nil:
		return Name(*name)
	default:
		return Default()
	}
}

// Subcommand is the first positional word when it names a command.
type Subcommand string

const (
	SubNone      Subcommand = ""
	SubNew       Subcommand = "new"
	SubAdd       Subcommand = "add"
	SubList      Subcommand = "list"
	SubClean     Subcommand = "clean"
	SubTemplates Subcommand = "templates"
)

// Kind identifies an Action.
type Kind int

const (
	// KindDefault creates the note if missing and opens it.
	KindDefault Kind = iota
	// KindNew creates or overwrites the note and opens it.
	KindNew
	// KindAdd tracks an existing note.
	KindAdd
	// KindList prints tracked notes.
	KindList
	// KindClean drops tracked notes that no longer exist.
	KindClean
	// KindTemplates prints configured template ids.
	KindTemplates
)

func (k Kind) String() string {
	switch k {
	case KindNew:
		return "new"
	case KindAdd:
		return "add"
	case KindList:
		return "list"
	case KindClean:
		return "clean"
	case KindTemplates:
		return "templates"
	default:
		return "default"
	}
}

// Action is a resolved request. Named is used by the default, new and add
// kinds.
type Action struct {
	Kind  Kind
	Named Named
}

// Resolve turns a subcommand and named arguments into an Action. Unknown
// subcommands fall back to the default action.
func Resolve(named Named, sub Subcommand) Action {
	switch sub {
	case SubNew:
		return Action{Kind: KindNew, Named: named}
	case SubAdd:
		return Action{Kind: KindAdd, Named: named}
	case SubList:
		return Action{Kind: KindList}
	case SubClean:
		return Action{Kind: KindClean}
	case SubTemplates:
		return Action{Kind: KindTemplates}
	default:
		return Action{Kind: KindDefault, Named: named}
	}
}
