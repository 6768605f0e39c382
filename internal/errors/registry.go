package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Construction errors (E101-E199)
	"E101": {
		Category:   CategoryConstruction,
		Message:    "Missing required attribute",
		Suggestion: "Pass every attribute the element kind lists as required to its constructor",
	},

	// Structural errors (E201-E299)
	"E201": {
		Category:   CategoryStructural,
		Message:    "Node has no parent",
		Suggestion: "Attach the node to a parent before using sibling operations",
	},
	"E202": {
		Category: CategoryStructural,
		Message:  "No sibling at position",
	},
	"E203": {
		Category:   CategoryStructural,
		Message:    "Node cannot contain itself",
		Suggestion: "Detach the node from its ancestors before attaching it here",
	},

	// Lookup errors (E301-E399)
	"E301": {
		Category: CategoryLookup,
		Message:  "Child index out of range",
	},
	"E302": {
		Category:   CategoryLookup,
		Message:    "No data stored for key",
		Suggestion: "Store a value with SetData before reading it",
	},
	"E303": {
		Category: CategoryLookup,
		Message:  "Class not present",
	},

	// Config errors (E401-E499)
	"E401": {
		Category: CategoryConfig,
		Message:  "Failed to read config file",
	},
	"E402": {
		Category:   CategoryConfig,
		Message:    "Invalid config file",
		Suggestion: "Check that tagtree.yaml is valid YAML",
	},
	"E403": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// Document errors (E501-E599)
	"E501": {
		Category: CategoryDocument,
		Message:  "Failed to read tree document",
	},
	"E502": {
		Category:   CategoryDocument,
		Message:    "Failed to decode tree document",
		Suggestion: "Each node needs a tag; children are strings or nested nodes",
	},
	"E503": {
		Category: CategoryDocument,
		Message:  "Invalid tree document",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
