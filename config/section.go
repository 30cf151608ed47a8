package config

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/0xalexb/hjarta-config/store"
	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

// pathSeparator separates section names in a path.
const pathSeparator = ":"

// SectionOptions holds construction settings for a Section.
type SectionOptions struct {
	Locking bool
}

// SectionOption defines a function type for applying section options.
type SectionOption func(*SectionOptions)

// WithLocking makes the section, its store and every child it creates safe for concurrent use.
func WithLocking() SectionOption {
	return func(opts *SectionOptions) {
		opts.Locking = true
	}
}

// Section is a node of the configuration tree: a typed store plus named children.
type Section struct {
	mu       *sync.Mutex
	store    *store.Store
	children map[string]*Section
}

// NewSection creates an empty root section.
func NewSection(opts ...SectionOption) *Section {
	var options SectionOptions

	for _, apply := range opts {
		apply(&options)
	}

	return newSection(options)
}

func newSection(options SectionOptions) *Section {
	section := &Section{
		mu:       nil,
		store:    nil,
		children: make(map[string]*Section),
	}

	if options.Locking {
		section.mu = &sync.Mutex{}
		section.store = store.New(store.WithLocking())
	} else {
		section.store = store.New()
	}

	return section
}

// Store returns the section's underlying store.
func (s *Section) Store() *store.Store {
	return s.store
}

// Section returns the child named name, creating and attaching an empty one if needed.
// Repeated calls with the same name return the same instance.
func (s *Section) Section(name string) *Section {
	s.lock()
	defer s.unlock()

	child, ok := s.children[name]
	if !ok {
		child = newSection(SectionOptions{Locking: s.mu != nil})
		s.children[name] = child
	}

	return child
}

// At descends a colon-separated path of section names, creating missing sections.
// An empty path returns s itself.
func (s *Section) At(path string) *Section {
	current := s
	if path == "" {
		return current
	}

	for _, name := range strings.Split(path, pathSeparator) {
		current = current.Section(name)
	}

	return current
}

// Children returns the names of the attached child sections in sorted order.
func (s *Section) Children() []string {
	s.lock()
	defer s.unlock()

	names := make([]string, 0, len(s.children))
	for name := range s.children {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// HasSection reports whether a child named name exists, without creating it.
func (s *Section) HasSection(name string) bool {
	s.lock()
	defer s.unlock()

	_, ok := s.children[name]

	return ok
}

// PutAny stores value under key; see store.Store.PutAny.
func (s *Section) PutAny(key typekey.Key, value any, rule validate.Rule) error {
	return s.store.PutAny(key, value, rule)
}

// Contains reports whether key is set at this level.
func (s *Section) Contains(key typekey.Key) bool {
	return s.store.Contains(key)
}

// ValidateAll re-runs the validators registered at this level and yields every failure
// message. Child sections are not visited; use ValidateTree for a recursive sweep.
func (s *Section) ValidateAll() iter.Seq[string] {
	return s.store.ValidateAll()
}

func (s *Section) child(name string) (*Section, bool) {
	s.lock()
	defer s.unlock()

	child, ok := s.children[name]

	return child, ok
}

func (s *Section) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *Section) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}
