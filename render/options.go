// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

// Option customizes a DOT rendering.
type Option func(*config)

// config is the resolved set of rendering knobs.
type config struct {
	rankDir string
	names   map[value.ID]string
}

// DefaultRankDir lays the computation out left to right, inputs first.
const DefaultRankDir = "LR"

// rankDirs lists the layout directions Graphviz accepts.
var rankDirs = map[string]bool{"TB": true, "LR": true, "BT": true, "RL": true}

// newConfig applies opts over the defaults, later options winning.
func newConfig(opts ...Option) config {
	cfg := config{rankDir: DefaultRankDir}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRankDir sets the Graphviz rankdir. Panics unless dir is one of
// TB, LR, BT, RL.
func WithRankDir(dir string) Option {
	if !rankDirs[dir] {
		panic(fmt.Sprintf("render: WithRankDir(%q)", dir))
	}
	return func(c *config) { c.rankDir = dir }
}

// WithNames attaches human-readable names to node labels. The map is read,
// never modified; IDs without an entry are rendered unnamed.
func WithNames(names map[value.ID]string) Option {
	return func(c *config) { c.names = names }
}

// IsRankDir reports whether dir is accepted by WithRankDir.
func IsRankDir(dir string) bool { return rankDirs[dir] }
