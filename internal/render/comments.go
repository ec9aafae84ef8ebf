package render

import "fmt"

// Comment renders a COMMENT ON statement for an object with a description.
// Returns the empty string when the description is empty — objects without
// descriptions emit nothing.
func Comment(objectKind, qualifiedName, description string) string {
	if description == "" {
		return ""
	}
	return fmt.Sprintf("COMMENT ON %s %s IS '%s';\n", objectKind, qualifiedName, escapeText(description))
}
