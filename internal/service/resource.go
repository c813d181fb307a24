package service

import (
	"context"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
)

// call issues r against base and decodes the success value into T.
func call[T any](ctx context.Context, requester core.Requester, base string, r apiclient.Request) (T, error) {
	raw, err := requester.Do(ctx, base, r)
	if err != nil {
		var zero T
		return zero, err
	}
	return apiclient.DecodeData[T](raw, r.Fallback)
}

// exec issues r against base and discards any success body.
func exec(ctx context.Context, requester core.Requester, base string, r apiclient.Request) error {
	_, err := requester.Do(ctx, base, r)
	return err
}

// resource implements the list/get/create/update/delete verbs shared by
// most backend collections. T is the entity, C the create body, U the update body.
type resource[T, C, U any] struct {
	requester core.Requester
	base      string
	singular  string
	plural    string
}

func newResource[T, C, U any](requester core.Requester, base, singular, plural string) resource[T, C, U] {
	if requester == nil {
		panic("requester is required")
	}
	return resource[T, C, U]{requester: requester, base: base, singular: singular, plural: plural}
}

func idPath(id string) string {
	return "/" + apiclient.PathEscape(id)
}

func (r resource[T, C, U]) list(ctx context.Context) ([]T, error) {
	return r.listAt(ctx, "")
}

func (r resource[T, C, U]) listAt(ctx context.Context, path string) ([]T, error) {
	return call[[]T](ctx, r.requester, r.base, apiclient.Get(path, "Failed to retrieve "+r.plural))
}

func (r resource[T, C, U]) get(ctx context.Context, id string) (*T, error) {
	return call[*T](ctx, r.requester, r.base, apiclient.Get(idPath(id), "Failed to retrieve "+r.singular))
}

func (r resource[T, C, U]) create(ctx context.Context, body C) (*T, error) {
	return call[*T](ctx, r.requester, r.base, apiclient.Post("", body, "Failed to create "+r.singular))
}

func (r resource[T, C, U]) update(ctx context.Context, id string, body U) (*T, error) {
	return call[*T](ctx, r.requester, r.base, apiclient.Put(idPath(id), body, "Failed to update "+r.singular))
}

func (r resource[T, C, U]) remove(ctx context.Context, id string) error {
	return exec(ctx, r.requester, r.base, apiclient.Delete(idPath(id), "Failed to delete "+r.singular))
}
