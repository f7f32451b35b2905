package entity

import "github.com/google/uuid"

// EntityType tags the closed set of entity kinds the resolver supports.
type EntityType string

const (
	EntityTypeDocument     EntityType = "document"
	EntityTypeDocumentType EntityType = "document-type"
	EntityTypeMedia        EntityType = "media"
	EntityTypeMediaType    EntityType = "media-type"
	EntityTypeDataType     EntityType = "data-type"
	EntityTypeMember       EntityType = "member"
	EntityTypeMemberType   EntityType = "member-type"
)

// Object type identifiers stored on node rows. These are a wire contract
// with the node store and must not change.
var (
	DocumentObjectType     = uuid.MustParse("c66ba18e-eaf3-4cff-8a22-41b16d66a972")
	DocumentTypeObjectType = uuid.MustParse("a2cb7800-f571-4787-9638-bc48539a0efb")
	MediaObjectType        = uuid.MustParse("b796f64c-1f99-4ffb-b886-4bf4bc011a9c")
	MediaTypeObjectType    = uuid.MustParse("4ea4382b-2f5a-4c2b-9587-ae85e26617b7")
	DataTypeObjectType     = uuid.MustParse("30a2a501-1978-4ddb-a57b-f7efed43ba3c")
	MemberObjectType       = uuid.MustParse("39eb0f98-b348-42a1-8662-e7eb18487560")
	MemberTypeObjectType   = uuid.MustParse("9b5416fb-e72f-45a9-a07b-5a9a2709ce43")

	// SystemRootObjectType marks the root container node; ReservationObjectType
	// marks placeholder rows created by id reservation. Neither is a
	// resolvable entity kind.
	SystemRootObjectType  = uuid.MustParse("ea7d8624-4cfe-4578-a871-24aa946bf34d")
	ReservationObjectType = uuid.MustParse("92849b1e-3904-4713-9356-f646f87c25f5")
)

var objectTypesByKind = map[EntityType]uuid.UUID{
	EntityTypeDocument:     DocumentObjectType,
	EntityTypeDocumentType: DocumentTypeObjectType,
	EntityTypeMedia:        MediaObjectType,
	EntityTypeMediaType:    MediaTypeObjectType,
	EntityTypeDataType:     DataTypeObjectType,
	EntityTypeMember:       MemberObjectType,
	EntityTypeMemberType:   MemberTypeObjectType,
}

// Kinds returns every supported entity kind.
func Kinds() []EntityType {
	kinds := make([]EntityType, 0, len(objectTypesByKind))
	for kind := range objectTypesByKind {
		kinds = append(kinds, kind)
	}
	return kinds
}

// ObjectTypeOf returns the object type identifier for a kind.
func ObjectTypeOf(kind EntityType) (uuid.UUID, error) {
	objectType, ok := objectTypesByKind[kind]
	if !ok {
		return uuid.Nil, ErrUnsupportedEntityType
	}
	return objectType, nil
}

// KindOf returns the kind tagged by an object type identifier.
func KindOf(objectType uuid.UUID) (EntityType, error) {
	for kind, ot := range objectTypesByKind {
		if ot == objectType {
			return kind, nil
		}
	}
	return "", ErrUnsupportedEntityType
}
