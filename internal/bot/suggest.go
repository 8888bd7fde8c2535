package bot

import "github.com/lithammer/fuzzysearch/fuzzy"

var knownCommands = []string{"start", "help", "status", "link", "email", "x"}

// suggestMaxDistance bounds how far a typo can be from a real command
// before no suggestion is offered.
const suggestMaxDistance = 2

// Suggest returns the nearest known command to a mistyped one.
func Suggest(cmd string) (string, bool) {
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, c := range knownCommands {
		if d := fuzzy.LevenshteinDistance(cmd, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
