package queries

import (
	"context"

	"gemstore/internal/infra"
	"gemstore/internal/pkg/errs"
)

// ErrRenderFailure marks a PDF rendering problem. The stored invoice is
// untouched; the caller may simply retry.
var ErrRenderFailure = errs.New("invoice rendering failed")

type invoiceQueriesImpl struct {
	store    InvoiceReadStore
	renderer DocumentRenderer
}

func NewInvoiceQueries(store InvoiceReadStore, renderer DocumentRenderer) InvoiceQueries {
	return &invoiceQueriesImpl{store: store, renderer: renderer}
}

func (q *invoiceQueriesImpl) GetByNumber(ctx context.Context, num string) (*InvoiceView, error) {
	return q.wrapNotFound(q.store.ViewByNumber(ctx, num))
}

func (q *invoiceQueriesImpl) GetByOrderNumber(ctx context.Context, orderNumber string) (*InvoiceView, error) {
	return q.wrapNotFound(q.store.ViewByOrderNumber(ctx, orderNumber))
}

func (q *invoiceQueriesImpl) RenderByNumber(ctx context.Context, num string) ([]byte, error) {
	view, err := q.GetByNumber(ctx, num)
	if err != nil {
		return nil, err
	}
	return q.render(view)
}

// RenderByOrderNumber resolves the order's invoice in one read and returns
// its number alongside the document, so callers can name the download.
func (q *invoiceQueriesImpl) RenderByOrderNumber(ctx context.Context, orderNumber string) (string, []byte, error) {
	view, err := q.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return "", nil, err
	}
	data, err := q.render(view)
	if err != nil {
		return "", nil, err
	}
	return view.Number, data, nil
}

func (q *invoiceQueriesImpl) render(view *InvoiceView) ([]byte, error) {
	data, err := q.renderer.Render(view)
	if err != nil {
		return nil, errs.Mark(err, ErrRenderFailure)
	}
	return data, nil
}

func (q *invoiceQueriesImpl) wrapNotFound(view *InvoiceView, err error) (*InvoiceView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}
