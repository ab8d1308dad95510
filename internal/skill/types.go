// Package skill models AnythingLLM custom-skill records and their on-disk
// plugin.json manifests. A skill is a folder named after its hubId containing
// the manifest and a JavaScript handler file.
package skill

// ManifestName is the expected skill manifest filename.
const ManifestName = "plugin.json"

// DefaultEntrypointFile is the conventional handler filename.
const DefaultEntrypointFile = "handler.js"

// SchemaVersion is the only schema literal AnythingLLM accepts.
const SchemaVersion = "skill-1.0.0"

// Param describes a single entrypoint parameter.
type Param struct {
	// Description is a human-readable explanation of the parameter (required)
	Description string `json:"description"`

	// Type is the expected value type, e.g. "string" (required)
	Type string `json:"type"`
}

// Entrypoint describes the handler file and its declared parameters.
type Entrypoint struct {
	// File is the handler script filename, relative to the skill folder
	File string `json:"file"`

	// Params maps parameter name to its declaration
	Params map[string]Param `json:"params"`
}

// Manifest is the persisted plugin.json shape.
type Manifest struct {
	// Active marks the skill as enabled in AnythingLLM
	Active bool `json:"active"`

	// HubID is the unique identifier; it must equal the folder name
	HubID string `json:"hubId"`

	// Name is the user-friendly display name
	Name string `json:"name"`

	// Schema is always SchemaVersion
	Schema string `json:"schema"`

	// Version is the semantic version of the skill
	Version string `json:"version"`

	// Description is a short summary of what the skill does
	Description string `json:"description"`

	// OutputDescription documents what the handler returns
	OutputDescription string `json:"output_description"`

	// Entrypoint declares the handler file and parameters
	Entrypoint Entrypoint `json:"entrypoint"`
}

// Record is the normalized in-memory form of a skill, the result of a
// validated form submission.
type Record struct {
	Name              string
	HubID             string
	Description       string
	EntrypointFile    string
	Params            map[string]Param
	OutputDescription string
	Version           string
	Schema            string

	// Active is carried through modify so editing never silently
	// disables a skill. New records default to true.
	Active bool
}

// Manifest converts the record into its persisted plugin.json shape.
func (r *Record) Manifest() *Manifest {
	return &Manifest{
		Active:            r.Active,
		HubID:             r.HubID,
		Name:              r.Name,
		Schema:            r.Schema,
		Version:           r.Version,
		Description:       r.Description,
		OutputDescription: r.OutputDescription,
		Entrypoint: Entrypoint{
			File:   r.EntrypointFile,
			Params: r.Params,
		},
	}
}

// RecordFromManifest converts a parsed manifest back into a record.
func RecordFromManifest(m *Manifest) *Record {
	return &Record{
		Name:              m.Name,
		HubID:             m.HubID,
		Description:       m.Description,
		EntrypointFile:    m.Entrypoint.File,
		Params:            m.Entrypoint.Params,
		OutputDescription: m.OutputDescription,
		Version:           m.Version,
		Schema:            m.Schema,
		Active:            m.Active,
	}
}
