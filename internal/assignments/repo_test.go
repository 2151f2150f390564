package assignments

import (
	"context"
	"errors"
	"testing"

	"groupstudy_backend/internal/storage"
)

// Malformed hex ids must fail as generic errors (mapped to 500 by handlers),
// never as ErrNotFound. The parse happens before any collection access, so a
// zero-value Repository is enough here.
func TestRepositoryRejectsMalformedID(t *testing.T) {
	r := &Repository{}
	ctx := context.Background()

	if _, err := r.Get(ctx, "not-a-hex-id"); err == nil || errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get: got %v, want a parse error", err)
	}
	if _, err := r.Replace(ctx, "not-a-hex-id", &Assignment{}); err == nil {
		t.Error("Replace: got nil, want a parse error")
	}
	if _, err := r.Delete(ctx, "not-a-hex-id"); err == nil {
		t.Error("Delete: got nil, want a parse error")
	}
}
