package bench

import (
	"fmt"
	"slices"
	"strings"
)

// Tag is a category label used to include or exclude benchmarks.
type Tag string

// Known tags. Tag names supplied by users must be one of these.
const (
	TagValidation Tag = "validation"
	TagAPI        Tag = "api"
	TagAlgorithm  Tag = "algorithm"
	TagRuntime    Tag = "runtime"
	TagString     Tag = "string"
	TagCollection Tag = "collection"
	TagMemory     Tag = "memory"
	TagIO         Tag = "io"
	TagRegression Tag = "regression"

	// TagUnstable marks benchmarks whose timings are too noisy to compare.
	TagUnstable Tag = "unstable"

	// TagSkip marks benchmarks that are excluded unless named explicitly.
	TagSkip Tag = "skip"
)

var knownTags = []Tag{
	TagValidation,
	TagAPI,
	TagAlgorithm,
	TagRuntime,
	TagString,
	TagCollection,
	TagMemory,
	TagIO,
	TagRegression,
	TagUnstable,
	TagSkip,
}

// KnownTags returns every valid tag in a stable order.
func KnownTags() []Tag {
	return slices.Clone(knownTags)
}

// DefaultSkipTags returns the tags excluded when the caller does not say
// otherwise.
func DefaultSkipTags() []Tag {
	return []Tag{TagUnstable, TagSkip}
}

// ParseTag converts a user-supplied name into a [Tag].
func ParseTag(name string) (Tag, error) {
	tag := Tag(strings.TrimSpace(name))
	if !slices.Contains(knownTags, tag) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}

	return tag, nil
}

// ParseTags converts names into tags, failing on the first unknown name.
func ParseTags(names []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(names))

	for _, name := range names {
		tag, err := ParseTag(name)
		if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// TagSet is an unordered set of tags.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from tags.
func NewTagSet(tags ...Tag) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}

	return set
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]

	return ok
}

// ContainsAll reports whether every tag of other is in s.
func (s TagSet) ContainsAll(other TagSet) bool {
	for t := range other {
		if !s.Has(t) {
			return false
		}
	}

	return true
}

// Disjoint reports whether s and other share no tag.
func (s TagSet) Disjoint(other TagSet) bool {
	for t := range other {
		if s.Has(t) {
			return false
		}
	}

	return true
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}

	slices.Sort(out)

	return out
}
