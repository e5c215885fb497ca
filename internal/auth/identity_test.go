package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"bearer abc", "abc", nil},
		{"", "", ErrMissingToken},
		{"   ", "", ErrMissingToken},
		{"abc", "", ErrInvalidToken},
		{"Token abc.def.ghi", "abc.def.ghi", nil},
		{"Basic dXNlcjpwYXNz", "dXNlcjpwYXNz", nil},
		{"Bearer abc extra", "abc", nil},
		{"Bearer ", "", ErrInvalidToken},
		{"Bearer  abc", "", ErrInvalidToken},
	}
	for _, tc := range tests {
		got, err := BearerToken(tc.header)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "header %q", tc.header)
			continue
		}
		require.NoError(t, err, "header %q", tc.header)
		assert.Equal(t, tc.want, got)
	}
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	want := Identity{ID: 3, Username: "c", Role: "viewer"}
	got, ok := IdentityFromContext(WithIdentity(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}
