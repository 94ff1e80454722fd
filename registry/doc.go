// Package registry maps metric groups to their codecs and file names.
//
// It answers the questions a run loader asks before touching any file: which
// codec decodes a group, what the group's file is called inside a run folder,
// and which groups a summary or an imaging table needs.
//
//	entry, err := registry.LookupName("Tile")
//	set, err := entry.Codec.DecodeAny(data)
//
// Group dependencies are expanded by GroupsToLoad, so asking for Q also loads
// the collapsed and per-lane quality files.
package registry
