package cli

import (
	"fmt"
	"io"

	"github.com/alexander-akhmetov/commitment/internal/config"
)

func printConfig(w io.Writer, cfg *config.Config) error {
	p := func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}

	p("# Commitment Configuration\n\n")
	p("## Sources (in order of precedence)\n")
	for _, src := range cfg.Sources() {
		p("  - %s\n", src)
	}
	p("\n")

	p("## Directories\n")
	p("  Global config: %s\n", cfg.ConfigDir())
	if cfg.LocalDir() != "" {
		p("  Local config:  %s\n", cfg.LocalDir())
	} else {
		p("  Local config:  (none detected)\n")
	}
	p("\n")

	p("## Settings\n")
	if cfg.Author.Name != "" {
		p("  author:  %s <%s>\n", cfg.Author.Name, cfg.Author.Email)
	} else {
		p("  author:  (from git config)\n")
	}
	p("  output:  %s\n", cfg.Output)
	p("  debug:   %t\n", cfg.Debug)
	return nil
}
