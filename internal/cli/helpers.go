package cli

import (
	"fmt"
	"strings"

	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/domain"
)

// resolveChild finds a child by ID or (case-insensitive) name.
func resolveChild(trk *tracker.Service, ref string) (domain.Child, error) {
	children := trk.Children()
	for _, c := range children {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	if len(children) == 0 {
		return domain.Child{}, fmt.Errorf("no children yet — run 'trainquest child add <name>' first")
	}
	return domain.Child{}, fmt.Errorf("no child named %q", ref)
}

// progressBar renders a simple text progress bar.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
