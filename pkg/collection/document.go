package collection

import "go.mongodb.org/mongo-driver/v2/bson"

// Identifiable is a model carrying a mongo object id. Document provides
// the standard implementation.
type Identifiable interface {
	ObjectID() bson.ObjectID
	SetObjectID(id bson.ObjectID)
}

// Document is an embeddable base for models stored in mongo collections.
type Document struct {
	ID bson.ObjectID `bson:"_id,omitempty"`
}

func (d *Document) ObjectID() bson.ObjectID {
	return d.ID
}

func (d *Document) SetObjectID(id bson.ObjectID) {
	d.ID = id
}

// AssignID generates an object id for the model when its class uses
// implicit object ids and the model does not have one yet. It reports
// whether an id was assigned.
func (m *Manager) AssignID(model any) bool {
	ident, ok := model.(Identifiable)
	if !ok {
		return false
	}
	if !m.IsUsingImplicitObjectIDs(model) {
		return false
	}
	if !ident.ObjectID().IsZero() {
		return false
	}

	ident.SetObjectID(bson.NewObjectID())
	return true
}
