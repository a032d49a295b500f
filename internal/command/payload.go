package command

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TelemetryMap builds the opaque JSON property map carried by
// TelemetryEvent, without the core needing a struct for every
// telemetry shape a host might want.
func TelemetryMap(pairs ...string) string {
	json := "{}"
	for i := 0; i+1 < len(pairs); i += 2 {
		json, _ = sjson.Set(json, pairs[i], pairs[i+1])
	}
	return json
}

// CodeActionCommand extracts the "command" field's name and
// argument JSON from a VS Code-shaped CodeAction payload, as returned
// inside a SetQuickFix fix entry. ok is false if the payload has no
// command field.
func CodeActionCommand(codeActionJSON string) (name string, argsJSON string, ok bool) {
	res := gjson.Get(codeActionJSON, "command.command")
	if !res.Exists() {
		return "", "", false
	}
	args := gjson.Get(codeActionJSON, "command.arguments")
	return res.String(), args.Raw, true
}

// CodeActionEdit extracts the "edit" field of a VS Code-shaped
// CodeAction payload, the opaque workspace edit to forward via
// ExecuteWorkspaceEdit. ok is false if the payload has no edit field.
func CodeActionEdit(codeActionJSON string) (editJSON string, ok bool) {
	res := gjson.Get(codeActionJSON, "edit")
	if !res.Exists() {
		return "", false
	}
	return res.Raw, true
}
