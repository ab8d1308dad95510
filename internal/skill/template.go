package skill

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultHandler generates the boilerplate handler script written when a
// skill is created without a user-supplied handler. The stub follows the
// AnythingLLM custom-skill runtime contract: a module exporting a runtime
// object whose async handler returns a string.
func DefaultHandler(r *Record) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// %s\n", r.Name))
	if r.Description != "" {
		sb.WriteString(fmt.Sprintf("// %s\n", r.Description))
	}
	sb.WriteString("//\n")

	names := make([]string, 0, len(r.Params))
	for name := range r.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		sb.WriteString("// Parameters:\n")
		for _, name := range names {
			p := r.Params[name]
			sb.WriteString(fmt.Sprintf("//   %s (%s): %s\n", name, p.Type, p.Description))
		}
	} else {
		sb.WriteString("// Parameters: none\n")
	}
	if r.OutputDescription != "" {
		sb.WriteString(fmt.Sprintf("// Returns: %s\n", r.OutputDescription))
	}
	sb.WriteString("\n")

	sb.WriteString("module.exports.runtime = {\n")
	sb.WriteString("  handler: async function (")
	if len(names) > 0 {
		sb.WriteString("{ " + strings.Join(names, ", ") + " }")
	} else {
		sb.WriteString("args")
	}
	sb.WriteString(") {\n")
	sb.WriteString("    const caller = `${this.config.name}-v${this.config.version}`;\n")
	sb.WriteString("    try {\n")
	sb.WriteString("      this.introspect(`${caller} invoked`);\n")
	sb.WriteString("\n")
	sb.WriteString("      // TODO: implement the skill logic and return a string.\n")
	sb.WriteString(fmt.Sprintf("      return \"%s is not implemented yet.\";\n", jsEscape(r.Name)))
	sb.WriteString("    } catch (e) {\n")
	sb.WriteString("      this.logger(`${caller} failed: ${e.message}`);\n")
	sb.WriteString("      return `The skill failed to run. Error: ${e.message}`;\n")
	sb.WriteString("    }\n")
	sb.WriteString("  },\n")
	sb.WriteString("};\n")

	return sb.String()
}

// jsEscape escapes a value for embedding in a double-quoted JS string.
func jsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
