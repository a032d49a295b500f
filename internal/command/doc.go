// Package command defines the typed message surface between the core
// and its host: inbound Commands the host sends in, and outbound
// Events the core emits, per §4.L. Opaque JSON payloads the core
// never interprets (a quick-fix's workspace edit, a telemetry map)
// are carried as raw JSON and queried with gjson/built with sjson
// only when a field needs to be read or stamped.
package command
