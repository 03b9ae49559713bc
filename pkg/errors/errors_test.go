package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("product", 42)

	if got := err.Error(); got != "product with ID 42 not found" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true")
	}
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         *APIError
		notFound    bool
		unavailable bool
	}{
		{
			name:        "transport failure",
			err:         &APIError{Endpoint: "/products", Err: errors.New("connection refused")},
			unavailable: true,
		},
		{
			name:        "server error",
			err:         NewAPIError("/products", 503, "service unavailable"),
			unavailable: true,
		},
		{
			name:     "missing resource",
			err:      NewAPIError("/products/99", 404, "not found"),
			notFound: true,
		},
		{
			name: "client error",
			err:  NewAPIError("/products", 400, "bad request"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tt.notFound)
			}
			if got := IsRemoteUnavailable(tt.err); got != tt.unavailable {
				t.Errorf("IsRemoteUnavailable = %v, want %v", got, tt.unavailable)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := WrapAPI("/products", 0, cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestIOErrorDirections(t *testing.T) {
	write := WrapIO("write", "catalog.yaml", errors.New("disk full"))
	read := WrapIO("read", "catalog.yaml", errors.New("permission denied"))

	if !errors.Is(write, ErrStorageWrite) {
		t.Error("write IOError should match ErrStorageWrite")
	}
	if !errors.Is(read, ErrStorageRead) {
		t.Error("read IOError should match ErrStorageRead")
	}
	if errors.Is(write, ErrStorageRead) {
		t.Error("write IOError should not match ErrStorageRead")
	}
}

func TestParseErrorIsStorageRead(t *testing.T) {
	err := WrapParse("yaml", "catalog.yaml", fmt.Errorf("unexpected mapping"))
	if !IsStorageRead(err) {
		t.Error("unparsable snapshot should classify as a storage read failure")
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	if WrapIO("write", "x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("yaml", "x", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapAPI("/products", 200, nil) != nil {
		t.Error("WrapAPI(nil) should be nil")
	}
}
