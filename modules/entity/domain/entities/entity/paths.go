package entity

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// PathSegments parses a comma-delimited materialized path into integer ids,
// root sentinel first, the node's own id last.
func PathSegments(path string) ([]int, error) {
	parts := strings.Split(path, ",")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed path %q", path)
		}
		segments = append(segments, id)
	}
	return segments, nil
}

// PathDepth is the number of path segments, which equals the node's level;
// the reservation row at path "-1" has depth 1.
func PathDepth(path string) int {
	return strings.Count(path, ",") + 1
}

// PathSelfID returns the last path segment, which equals the node's own id on
// every well-formed row.
func PathSelfID(path string) (int, error) {
	idx := strings.LastIndexByte(path, ',')
	id, err := strconv.Atoi(path[idx+1:])
	if err != nil {
		return 0, errors.Wrapf(err, "malformed path %q", path)
	}
	return id, nil
}

// ValidateNode checks the node invariants: the path starts at the root
// sentinel, ends in the node's own id, matches the stored level, and carries
// the parent id as its second-to-last segment.
func ValidateNode(e *Entity) error {
	segments, err := PathSegments(e.Path)
	if err != nil {
		return err
	}
	if segments[0] != RootID {
		return errors.Errorf("path %q does not start at root", e.Path)
	}
	if segments[len(segments)-1] != e.ID {
		return errors.Errorf("path %q does not end in id %d", e.Path, e.ID)
	}
	if len(segments) != e.Level {
		return errors.Errorf("path %q has %d segments, level is %d", e.Path, len(segments), e.Level)
	}
	wantParent := RootID
	if len(segments) >= 2 {
		wantParent = segments[len(segments)-2]
	}
	if e.ParentID != wantParent {
		return errors.Errorf("path %q implies parent %d, node has %d", e.Path, wantParent, e.ParentID)
	}
	return nil
}
