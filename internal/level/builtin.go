package level

import (
	_ "embed"
)

//go:embed packs/necromancy.yaml
var builtinPack []byte

// Builtin returns the levels bundled with the game. They follow the tutorial when no level
// pack is configured.
func Builtin() []Level {
	levels, err := ParsePack(builtinPack)
	if err != nil {
		panic("level: bundled pack is invalid: " + err.Error())
	}
	return levels
}
