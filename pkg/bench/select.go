package bench

import (
	"slices"
	"strconv"
	"strings"
)

// Selected pairs a benchmark with its stable index.
type Selected struct {
	// Index is the 1-based position of the benchmark in the name-sorted
	// registry, in decimal. It does not depend on which benchmarks are
	// selected.
	Index string
	Info  Info
}

// Selection is the ordered list of benchmarks to execute.
type Selection []Selected

// Names returns the names of the selected benchmarks in order.
func (s Selection) Names() []string {
	names := make([]string, len(s))
	for i, sel := range s {
		names[i] = sel.Info.Name
	}

	return names
}

// Unmatched returns the entries of tests that name neither a selected
// benchmark nor a selected index, in their original order.
func (s Selection) Unmatched(tests []string) []string {
	seen := make(map[string]struct{}, 2*len(s))
	for _, sel := range s {
		seen[sel.Info.Name] = struct{}{}
		seen[sel.Index] = struct{}{}
	}

	var out []string

	for _, t := range tests {
		if _, ok := seen[t]; !ok {
			out = append(out, t)
		}
	}

	return out
}

// SelectOptions are the filters applied by [Select].
type SelectOptions struct {
	// Tests lists benchmark names or indices to run. When non-empty, it
	// replaces tag filtering entirely.
	Tests []string

	// Tags must all be present on a benchmark for it to be selected.
	Tags []string

	// SkipTags excludes benchmarks carrying any of them. Nil means
	// [DefaultSkipTags]; an empty non-nil slice skips nothing.
	SkipTags []string
}

// Indices assigns every benchmark in reg its stable index, keyed by name.
func Indices(reg *Registry) map[string]string {
	names := make([]string, 0, reg.Len())
	for _, info := range reg.benchmarks {
		names = append(names, info.Name)
	}

	slices.SortFunc(names, strings.Compare)

	indices := make(map[string]string, len(names))
	for i, name := range names {
		indices[name] = strconv.Itoa(i + 1)
	}

	return indices
}

// Select filters reg according to opts.
//
// Tag names are validated before anything is selected; an unknown name
// returns an error wrapping [ErrUnknownTag]. The result keeps registry
// order.
func Select(reg *Registry, opts SelectOptions) (Selection, error) {
	required, err := ParseTags(opts.Tags)
	if err != nil {
		return nil, err
	}

	var skip []Tag

	if opts.SkipTags == nil {
		skip = DefaultSkipTags()
	} else {
		skip, err = ParseTags(opts.SkipTags)
		if err != nil {
			return nil, err
		}
	}

	indices := Indices(reg)
	requiredSet := NewTagSet(required...)
	skipSet := NewTagSet(skip...)

	explicit := make(map[string]struct{}, len(opts.Tests))
	for _, t := range opts.Tests {
		explicit[t] = struct{}{}
	}

	selection := make(Selection, 0, reg.Len())

	for _, info := range reg.benchmarks {
		index := indices[info.Name]

		if len(explicit) > 0 {
			_, byName := explicit[info.Name]
			_, byIndex := explicit[index]

			if !byName && !byIndex {
				continue
			}
		} else {
			tags := info.TagSet()
			if !tags.ContainsAll(requiredSet) || !tags.Disjoint(skipSet) {
				continue
			}
		}

		selection = append(selection, Selected{Index: index, Info: info})
	}

	return selection, nil
}
