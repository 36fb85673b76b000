package ipcr

import "context"

// RecordStore is the external save collaborator. The engine hands it a
// complete, internally consistent form snapshot on every draft-save or
// submit; the storage format beyond the form model is the store's business.
type RecordStore interface {
	Save(ctx context.Context, form Form) error
	Get(ctx context.Context, formID string) (Form, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Form, error)
	List(ctx context.Context) ([]Form, error)
}
