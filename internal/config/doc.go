// Package config loads editor preferences (theme name, font metrics,
// tab width, indentation style) from a TOML file, adapting the
// teacher's loader/FileSystem split (internal/config/loader/toml.go)
// to Lilypad's much smaller settings surface.
package config
