package chaintrigger

import "strings"

// FormatTemplate replaces every "${key}" occurrence in template with
// vars[key]; keys absent from vars are left verbatim (§4.8), matching
// payload_builder.rs's format_template.
func FormatTemplate(template string, vars map[string]string) string {
	out := template
	for key, value := range vars {
		out = strings.ReplaceAll(out, "${"+key+"}", value)
	}
	return out
}
