package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klabast/wb-services/squeezers-site/internal/storage/fs"
)

// Include fragments and the tokens that pull them into a page.
const (
	NavFile     = "nav.html"
	FooterFile  = "footer.html"
	NavToken    = "{{ include: nav.html }}"
	FooterToken = "{{ include: footer.html }}"

	FilePermissions = 0o644
)

var (
	ErrMissingNav    = errors.New("missing " + NavFile)
	ErrMissingFooter = errors.New("missing " + FooterFile)
)

// Page is one rendered page, named like its template.
type Page struct {
	Name string
	HTML string
}

// Fragments holds the shared markup substituted into page templates.
// An empty Footer means there is no footer fragment.
type Fragments struct {
	Nav    string
	Footer string
}

// LoadFragments reads nav.html (required) and footer.html (optional) from dir.
func LoadFragments(dir string) (Fragments, error) {
	var frag Fragments
	nav, err := os.ReadFile(filepath.Join(dir, NavFile))
	if err != nil {
		if os.IsNotExist(err) {
			return frag, fmt.Errorf("%w in %s", ErrMissingNav, dir)
		}
		return frag, err
	}
	frag.Nav = string(nav)

	footer, err := os.ReadFile(filepath.Join(dir, FooterFile))
	if err != nil && !os.IsNotExist(err) {
		return frag, err
	}
	frag.Footer = string(footer)
	return frag, nil
}

// ResolveIncludes substitutes the include tokens in one page template.
// The nav is marked active for name.
func ResolveIncludes(tmpl, name string, frag Fragments) (string, error) {
	out := tmpl
	if strings.Contains(out, NavToken) {
		out = strings.ReplaceAll(out, NavToken, MarkActive(frag.Nav, name))
	}
	if strings.Contains(out, FooterToken) {
		if frag.Footer == "" {
			return "", fmt.Errorf("%s: %w", name, ErrMissingFooter)
		}
		out = strings.ReplaceAll(out, FooterToken, frag.Footer)
	}
	return out, nil
}

// RenderPages renders every *.html template in staticDir except the
// fragments themselves, in file name order.
func RenderPages(staticDir string) ([]Page, error) {
	frag, err := LoadFragments(staticDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(staticDir)
	if err != nil {
		return nil, err
	}

	var pages []Page
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".html" {
			continue
		}
		if name == NavFile || name == FooterFile {
			continue
		}

		tmpl, err := os.ReadFile(filepath.Join(staticDir, name))
		if err != nil {
			return nil, err
		}
		html, err := ResolveIncludes(string(tmpl), name, frag)
		if err != nil {
			return nil, err
		}
		pages = append(pages, Page{Name: name, HTML: html})
	}
	return pages, nil
}

// BuildPages renders all pages of staticDir into siteDir. Nothing is
// written unless every page renders.
func BuildPages(staticDir, siteDir string) ([]Page, error) {
	pages, err := RenderPages(staticDir)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if err := fs.WriteFileAtomic(filepath.Join(siteDir, p.Name), []byte(p.HTML), FilePermissions); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.Name, err)
		}
	}
	return pages, nil
}
