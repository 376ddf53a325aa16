// Package content embeds the castle world definition at build time.
package content

import _ "embed"

//go:embed castle.yaml
var castle []byte

// Castle returns the raw YAML of the castle zone.
func Castle() []byte {
	return castle
}
