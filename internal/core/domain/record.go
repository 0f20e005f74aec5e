package domain

import "time"

// Record represents a single entity returned by the catalog API.
// It mirrors the wire envelope shape: an open attribute bag plus
// named references to other records.
type Record struct {
	// ID is the record identifier, unique within its type.
	ID string

	// Type is the record type (e.g. "document", "directory").
	Type string

	// Attributes contains the record's fields as decoded JSON values.
	Attributes map[string]any

	// Relationships maps relationship names to record references.
	Relationships map[string]*RelationshipRef
}

// RelationshipRef is a reference from one record to another by type and id.
// Attributes stays nil until resolution attaches the referenced record's
// attribute bag; a reference with no matching side-loaded record stays nil.
type RelationshipRef struct {
	// Type is the referenced record's type.
	Type string

	// ID is the referenced record's identifier.
	ID string

	// Attributes holds the referenced record's attributes after resolution.
	Attributes map[string]any
}

// StringAttr returns the named attribute as a string.
// The second return reports whether the attribute is present and a string.
func (r Record) StringAttr(name string) (string, bool) {
	return stringValue(r.Attributes, name)
}

// Int64Attr returns the named attribute as an int64.
// JSON numbers decode as float64; integral values are accepted.
func (r Record) Int64Attr(name string) (int64, bool) {
	return int64Value(r.Attributes, name)
}

// BoolAttr returns the named attribute as a bool.
func (r Record) BoolAttr(name string) (bool, bool) {
	return boolValue(r.Attributes, name)
}

// TimeAttr returns the named attribute, held as epoch seconds, as a UTC time.
func (r Record) TimeAttr(name string) (time.Time, bool) {
	return timeValue(r.Attributes, name)
}

// Related returns the named relationship reference, or nil when absent.
func (r Record) Related(name string) *RelationshipRef {
	if r.Relationships == nil {
		return nil
	}
	return r.Relationships[name]
}

// StringAttr returns the named resolved attribute as a string.
// Safe to call on a nil reference: reports absent.
func (ref *RelationshipRef) StringAttr(name string) (string, bool) {
	if ref == nil {
		return "", false
	}
	return stringValue(ref.Attributes, name)
}

// Int64Attr returns the named resolved attribute as an int64.
// Safe to call on a nil reference: reports absent.
func (ref *RelationshipRef) Int64Attr(name string) (int64, bool) {
	if ref == nil {
		return 0, false
	}
	return int64Value(ref.Attributes, name)
}

// BoolAttr returns the named resolved attribute as a bool.
// Safe to call on a nil reference: reports absent.
func (ref *RelationshipRef) BoolAttr(name string) (bool, bool) {
	if ref == nil {
		return false, false
	}
	return boolValue(ref.Attributes, name)
}

// Resolved returns true once the referenced record's attributes are attached.
func (ref *RelationshipRef) Resolved() bool {
	return ref != nil && ref.Attributes != nil
}

func stringValue(attrs map[string]any, name string) (string, bool) {
	if attrs == nil {
		return "", false
	}
	s, ok := attrs[name].(string)
	return s, ok
}

func int64Value(attrs map[string]any, name string) (int64, bool) {
	if attrs == nil {
		return 0, false
	}
	switch v := attrs[name].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func boolValue(attrs map[string]any, name string) (bool, bool) {
	if attrs == nil {
		return false, false
	}
	b, ok := attrs[name].(bool)
	return b, ok
}

func timeValue(attrs map[string]any, name string) (time.Time, bool) {
	sec, ok := int64Value(attrs, name)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}
