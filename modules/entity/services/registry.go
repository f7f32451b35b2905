package services

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
)

// TypeDescriptor binds an entity kind's object type identifier to the
// collaborator service that loads its full entities.
type TypeDescriptor struct {
	EntityType entity.EntityType
	ObjectType uuid.UUID
	Service    entity.TypedService
}

// Registrations carries the typed collaborator services injected at
// construction, one per supported kind. A nil field leaves that kind
// unregistered; resolving it fails with ErrUnsupportedEntityType.
type Registrations struct {
	Document     entity.TypedService
	DocumentType entity.TypedService
	Media        entity.TypedService
	MediaType    entity.TypedService
	DataType     entity.TypedService
	Member       entity.TypedService
	MemberType   entity.TypedService
}

func (r Registrations) serviceFor(kind entity.EntityType) entity.TypedService {
	switch kind {
	case entity.EntityTypeDocument:
		return r.Document
	case entity.EntityTypeDocumentType:
		return r.DocumentType
	case entity.EntityTypeMedia:
		return r.Media
	case entity.EntityTypeMediaType:
		return r.MediaType
	case entity.EntityTypeDataType:
		return r.DataType
	case entity.EntityTypeMember:
		return r.Member
	case entity.EntityTypeMemberType:
		return r.MemberType
	}
	return nil
}

// typeRegistry is built once at construction and read-only afterwards.
type typeRegistry struct {
	byKind       map[entity.EntityType]TypeDescriptor
	byObjectType map[uuid.UUID]TypeDescriptor
}

func newTypeRegistry(registrations Registrations) *typeRegistry {
	r := &typeRegistry{
		byKind:       make(map[entity.EntityType]TypeDescriptor),
		byObjectType: make(map[uuid.UUID]TypeDescriptor),
	}
	for _, kind := range entity.Kinds() {
		svc := registrations.serviceFor(kind)
		if svc == nil {
			continue
		}
		objectType, err := entity.ObjectTypeOf(kind)
		if err != nil {
			continue
		}
		descriptor := TypeDescriptor{
			EntityType: kind,
			ObjectType: objectType,
			Service:    svc,
		}
		r.byKind[kind] = descriptor
		r.byObjectType[objectType] = descriptor
	}
	return r
}

func (r *typeRegistry) descriptor(kind entity.EntityType) (TypeDescriptor, error) {
	d, ok := r.byKind[kind]
	if !ok {
		return TypeDescriptor{}, errors.Wrapf(entity.ErrUnsupportedEntityType, "%s", kind)
	}
	return d, nil
}

func (r *typeRegistry) descriptorForObjectType(objectType uuid.UUID) (TypeDescriptor, error) {
	d, ok := r.byObjectType[objectType]
	if !ok {
		return TypeDescriptor{}, errors.Wrapf(entity.ErrUnsupportedEntityType, "object type %s", objectType)
	}
	return d, nil
}
