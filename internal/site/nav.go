package site

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	// ActiveClass is added to the nav link of the page being rendered.
	ActiveClass = "active"
	// SkipActiveAttr opts a link out of active marking (e.g. the logo link).
	SkipActiveAttr = "data-skip-active"
)

// MarkActive returns nav with every anchor whose href equals page marked as
// active. Anchors carrying data-skip-active are left alone. All other markup
// is copied byte for byte.
//
// An existing class attribute gets " active" appended without checking for
// duplicates, so marking the same nav twice yields "active active".
func MarkActive(nav, page string) string {
	z := html.NewTokenizer(strings.NewReader(nav))
	var out strings.Builder
	out.Grow(len(nav) + 16)
	for {
		tt := z.Next()
		// TagName lowercases the tag in place, so copy the raw bytes first.
		raw := string(z.Raw())
		if tt == html.ErrorToken {
			out.WriteString(raw)
			return out.String()
		}
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			if name, _ := z.TagName(); string(name) == "a" {
				out.WriteString(markAnchor(raw, page))
				continue
			}
		}
		out.WriteString(raw)
	}
}

// markAnchor rewrites a single raw <a ...> tag.
func markAnchor(tag, page string) string {
	attrs := parseAttrs(tag)

	href := -1
	for i, a := range attrs {
		if a.name == "href" && a.quote != 0 && a.value == page {
			href = i
			break
		}
	}
	if href < 0 {
		return tag
	}

	for _, a := range attrs {
		if a.name == SkipActiveAttr {
			return tag
		}
	}

	for _, a := range attrs {
		if a.name == "class" {
			return tag[:a.start] + `class="` + a.value + " " + ActiveClass + `"` + tag[a.end:]
		}
	}

	h := attrs[href]
	return tag[:h.start] + `href="` + page + `" class="` + ActiveClass + `"` + tag[h.end:]
}

// attr is one attribute of a raw start tag. start and end span the whole
// attribute (name through closing quote) so it can be replaced in place.
type attr struct {
	name  string
	value string
	quote byte
	start int
	end   int
}

// parseAttrs splits a raw start tag into its attributes. It understands the
// three value forms HTML allows (double quoted, single quoted, unquoted) and
// valueless attributes.
func parseAttrs(tag string) []attr {
	n := len(tag)
	i := 1
	for i < n && !isSpace(tag[i]) && tag[i] != '>' && tag[i] != '/' {
		i++
	}

	var attrs []attr
	for {
		for i < n && (isSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= n || tag[i] == '>' {
			return attrs
		}

		a := attr{start: i}
		for i < n && !isSpace(tag[i]) && tag[i] != '=' && tag[i] != '>' && tag[i] != '/' {
			i++
		}
		if i == a.start {
			// stray '=' where a name should be
			i++
		}
		a.name = strings.ToLower(tag[a.start:i])
		a.end = i

		j := i
		for j < n && isSpace(tag[j]) {
			j++
		}
		if j < n && tag[j] == '=' {
			j++
			for j < n && isSpace(tag[j]) {
				j++
			}
			switch {
			case j < n && (tag[j] == '"' || tag[j] == '\''):
				a.quote = tag[j]
				closing := strings.IndexByte(tag[j+1:], a.quote)
				if closing < 0 {
					a.value = tag[j+1:]
					j = n
				} else {
					a.value = tag[j+1 : j+1+closing]
					j = j + 1 + closing + 1
				}
			default:
				start := j
				for j < n && !isSpace(tag[j]) && tag[j] != '>' {
					j++
				}
				a.value = tag[start:j]
			}
			a.end = j
			i = j
		}
		attrs = append(attrs, a)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
