package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/commitment/internal/commit"
	"github.com/alexander-akhmetov/commitment/internal/git"
)

// styles are bound to the output writer so colors are dropped when it is
// not a terminal.
type styles struct {
	branch  lipgloss.Style
	hash    lipgloss.Style
	message lipgloss.Style
	dim     lipgloss.Style
	change  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		branch:  r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		hash:    r.NewStyle().Foreground(lipgloss.Color("117")),
		message: r.NewStyle().Bold(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color("241")),
		change:  r.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// renderText prints a git-style summary line, e.g.
//
//	[ABC-123-feature 1a2b3c4] ABC-123 Add widget
func renderText(w io.Writer, res *commit.Result, changes []git.Change) error {
	s := newStyles(w)

	if res.DryRun {
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			s.dim.Render("would commit on"), s.branch.Render(res.Branch), s.message.Render(res.Message)); err != nil {
			return err
		}
		for _, c := range changes {
			if _, err := fmt.Fprintf(w, "  %s\n", s.change.Render(c.String())); err != nil {
				return err
			}
		}
		return nil
	}

	ref := s.branch.Render(res.Branch)
	if len(res.Parents) == 0 {
		ref += " " + s.dim.Render("(root-commit)")
	}
	_, err := fmt.Fprintf(w, "[%s %s] %s\n", ref, s.hash.Render(shortHash(res.Hash.String())), s.message.Render(res.Message))
	return err
}

// renderJSON prints the result as an indented JSON object.
func renderJSON(w io.Writer, res *commit.Result, changes []git.Change) error {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, value)
		}
	}

	set("branch", res.Branch)
	set("message", res.Message)
	set("dry_run", res.DryRun)
	if res.DryRun {
		entries := make([]map[string]string, 0, len(changes))
		for _, c := range changes {
			entries = append(entries, map[string]string{
				"path":     c.Path,
				"staging":  string(rune(c.Staging)),
				"worktree": string(rune(c.Worktree)),
			})
		}
		set("changes", entries)
	} else {
		parents := make([]string, 0, len(res.Parents))
		for _, p := range res.Parents {
			parents = append(parents, p.String())
		}
		set("commit", res.Hash.String())
		set("tree", res.Tree.String())
		set("parents", parents)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = w.Write(pretty.Pretty([]byte(doc)))
	return err
}
