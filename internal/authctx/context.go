package authctx

import (
	"context"

	"github.com/picksart/backend/internal/model"
)

type ctxKey string

const (
	keyPrincipal ctxKey = "picksart_principal"
	keyRID       ctxKey = "picksart_rid"
)

// WithPrincipal stores the resolved identity for downstream operations.
func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, p)
}

// Principal returns the resolved identity if present.
func Principal(ctx context.Context) *model.Principal {
	p, _ := ctx.Value(keyPrincipal).(*model.Principal)
	return p
}

// WithRID stores the request correlation id.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the request correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}
