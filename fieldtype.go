package rivecore

// FieldType identifies the wire/value type of a property (spec §3, §4.2).
// The registry uses it both to dispatch typed setters/getters and, for
// properties unknown to the compiled schema, to skip the correct number of
// bytes using the property-type table-of-contents (spec §6).
type FieldType uint8

const (
	FieldTypeUint FieldType = iota
	FieldTypeInt
	FieldTypeFloat
	FieldTypeBool
	FieldTypeColor
	FieldTypeString
	FieldTypeBytes
	FieldTypeCallback
)

// skip advances r past a value of this field type without decoding it,
// used by the object-model loader (spec §4.3) when a property key is
// recognized by the file's TOC but not by any class's property
// deserialiser chain.
func (ft FieldType) skip(r *reader) {
	switch ft {
	case FieldTypeUint, FieldTypeInt:
		r.ReadVarUint()
	case FieldTypeFloat:
		r.ReadFloat32()
	case FieldTypeBool:
		r.ReadBool()
	case FieldTypeColor:
		r.ReadColor()
	case FieldTypeString:
		r.ReadStringRef()
	case FieldTypeBytes:
		n := r.ReadVarUint()
		r.ReadBytes(int(n))
	case FieldTypeCallback:
		// Callbacks carry no value on the wire; applying one is a fire,
		// not a set.
	default:
		r.fail()
	}
}
