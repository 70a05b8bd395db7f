// Package markdown parses the conventions of skill corpus documents:
// YAML front matter, titles and the "When to use" prose section that
// substitutes for explicit trigger keywords.
package markdown

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML preamble of a skill document.
type FrontMatter struct {
	// ID is the declared identifier. Name is accepted as an alias
	// because several published packs use it.
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// Title is the display name.
	Title string `yaml:"title"`

	// Description summarises when the skill applies.
	Description string `yaml:"description"`

	// Keywords are the trigger terms.
	Keywords StringList `yaml:"keywords"`

	// Root marks the corpus entry point.
	Root bool `yaml:"root"`
}

// EffectiveID returns the declared identifier, preferring id over name.
func (f *FrontMatter) EffectiveID() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// StringList decodes either a YAML sequence or a single comma-separated
// scalar. Both forms appear in published skill packs.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				*l = append(*l, part)
			}
		}
		return nil
	default:
		return fmt.Errorf("expected list or string, got YAML node kind %d", value.Kind)
	}
}

var delimiter = regexp.MustCompile(`(?m)^---\s*$`)

// Split separates front matter from the document body. ok is false when
// the document has no front matter; body is then the whole input.
// A "---" horizontal rule later in the document is not a delimiter:
// front matter must open on the very first line.
func Split(content string) (meta, body string, ok bool) {
	rest := strings.TrimPrefix(content, "\uFEFF")

	open := delimiter.FindStringIndex(rest)
	if open == nil || open[0] != 0 {
		return "", content, false
	}

	tail := rest[open[1]:]
	closing := delimiter.FindStringIndex(tail)
	if closing == nil {
		return "", content, false
	}

	meta = strings.Trim(tail[:closing[0]], "\r\n")
	body = strings.TrimLeft(tail[closing[1]:], "\r\n")
	return meta, body, true
}

// Parse decodes the document's front matter. Documents without front
// matter return a zero FrontMatter and the full body with no error.
// Malformed YAML is an error: silently dropping declared keywords
// would change routing behaviour.
func Parse(content string) (FrontMatter, string, error) {
	meta, body, ok := Split(content)
	if !ok {
		return FrontMatter{}, body, nil
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return FrontMatter{}, body, fmt.Errorf("parse front matter: %w", err)
	}
	return fm, body, nil
}

// ExtractTitle extracts a title from the first H1 heading, falling back
// to a cleaned-up file name.
func ExtractTitle(body, path string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// ExtractDescription returns the first prose paragraph of the body,
// truncated to a listing-friendly length.
func ExtractDescription(body string) string {
	const maxLen = 200

	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" || strings.HasPrefix(para, "#") || strings.HasPrefix(para, "```") {
			continue
		}
		text := strings.Join(strings.Fields(stripInline(para)), " ")
		if text == "" {
			continue
		}
		if runes := []rune(text); len(runes) > maxLen {
			text = string(runes[:maxLen-3]) + "..."
		}
		return text
	}
	return ""
}

var (
	whenToUseHeading = regexp.MustCompile(`(?mi)^#{2,6}\s*when to use\b.*$`)
	anyHeading       = regexp.MustCompile(`(?m)^#{1,6}\s`)
	bulletLine       = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	backtickTerm     = regexp.MustCompile("`([^`]+)`")
	inlineLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// maxWhenToUseKeywords caps prose-derived triggers so a chatty section
// cannot drown the catalog in noise.
const maxWhenToUseKeywords = 16

// WhenToUse derives trigger keywords from a "## When to use" section.
// Short bullet items become keywords as written; longer bullets
// contribute only their backtick-quoted terms, since a full sentence
// would make a useless phrase trigger. Returns nil when the section
// is absent.
func WhenToUse(body string) []string {
	loc := whenToUseHeading.FindStringIndex(body)
	if loc == nil {
		return nil
	}
	section := body[loc[1]:]
	if next := anyHeading.FindStringIndex(section); next != nil {
		section = section[:next[0]]
	}

	var keywords []string
	seen := make(map[string]struct{})
	add := func(term string) {
		term = strings.Trim(strings.TrimSpace(strings.ToLower(term)), ".,;:!?")
		term = strings.Join(strings.Fields(term), " ")
		if term == "" || len(keywords) >= maxWhenToUseKeywords {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		keywords = append(keywords, term)
	}

	for _, line := range strings.Split(section, "\n") {
		m := bulletLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := m[1]

		ticks := backtickTerm.FindAllStringSubmatch(item, -1)
		plain := stripInline(item)
		if len(strings.Fields(plain)) <= 6 {
			add(plain)
			continue
		}
		for _, t := range ticks {
			add(t[1])
		}
	}
	return keywords
}

// stripInline removes links, emphasis and code spans from one line.
func stripInline(s string) string {
	s = inlineLink.ReplaceAllString(s, "$1")
	s = strings.NewReplacer("**", "", "*", "", "__", "", "`", "").Replace(s)
	return strings.TrimSpace(s)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a kebab-case identifier from a file name.
func Slugify(name string) string {
	name = strings.ToLower(name)
	name = slugInvalid.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
