package config

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/store"
	"github.com/0xalexb/hjarta-config/typekey"

	"github.com/mitchellh/mapstructure"
)

// ToExportView flattens this level's entries into a plain map and nests each child's
// view under its section name. Unqualified entries are keyed by their type name
// (e.g. "int"), qualified entries by their qualifier. A qualifier shared by entries of
// different types is spelled out per entry as "type[qualifier]" (e.g. "int[port]").
// On any remaining name clash a qualified entry shadows an unqualified one, a child
// section shadows both, and among entries the key later in typekey.Compare order wins.
func (s *Section) ToExportView() map[string]any {
	entries := store.AllAssignableTo[any](s.store)
	keys := s.store.Keys()
	names := s.Children()
	view := make(map[string]any, len(entries)+len(names))

	shared := make(map[string]int, len(keys))

	for _, key := range keys {
		if key.Qualifier() != "" {
			shared[key.Qualifier()]++
		}
	}

	for _, qualified := range []bool{false, true} {
		for _, key := range keys {
			value, ok := entries[key]
			if !ok || (key.Qualifier() != "") != qualified {
				continue
			}

			view[exportName(key, shared)] = value
		}
	}

	for _, name := range names {
		child, ok := s.child(name)
		if ok {
			view[name] = child.ToExportView()
		}
	}

	return view
}

func exportName(key typekey.Key, shared map[string]int) string {
	switch {
	case key.Qualifier() == "":
		return key.TypeName()
	case shared[key.Qualifier()] > 1:
		return key.String()
	default:
		return key.Qualifier()
	}
}

// Decode decodes the section's export view into target, which must be a pointer.
// Struct fields are matched by their `yaml` tag.
func (s *Section) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{ //nolint:exhaustruct // defaults are fine
		TagName:          "yaml",
		Result:           target,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(s.ToExportView())
	if err != nil {
		return fmt.Errorf("decoding section: %w", err)
	}

	return nil
}
