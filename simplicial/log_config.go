package simplicial

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init configures the global zerolog level from the DEBUG_TOPONORM
// environment variable: "off"/"0" disables logging, "full" enables debug
// output, anything else keeps the info level.
func init() {
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv("DEBUG_TOPONORM")))

	if debugMode == "off" || debugMode == "0" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else if debugMode == "full" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
