package pidgin

import (
	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/token"
)

// runeCfg is a shared default configuration for the rune-token tests
// in this package.
func runeCfg() *config.Config[rune] {
	return config.New(config.WithPositionCalculator(config.CharPositionCalculator(1)))
}

func parseRunes[R any](p Parser[rune, R], input string) (R, error) {
	return Parse(p, token.NewRunes(input), runeCfg())
}
