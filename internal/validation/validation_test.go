package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/contacthub/pkg/api"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		req     api.RegisterRequest
		wantErr bool
		errSubs []string
	}{
		{
			name: "valid",
			req:  api.RegisterRequest{Username: "alice", Password: "secret", Name: "Alice"},
		},
		{
			name:    "all empty",
			req:     api.RegisterRequest{},
			wantErr: true,
			errSubs: []string{"username is required", "password is required", "name is required"},
		},
		{
			name:    "username too long",
			req:     api.RegisterRequest{Username: strings.Repeat("a", 101), Password: "p", Name: "n"},
			wantErr: true,
			errSubs: []string{"username must not exceed 100 characters"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Register(tc.req)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			for _, sub := range tc.errSubs {
				assert.Contains(t, err.Error(), sub)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	require.NoError(t, Login(api.LoginRequest{Username: "alice", Password: "secret"}))
	require.Error(t, Login(api.LoginRequest{Username: "", Password: ""}))
}

func TestUpdateUser_EmptyBodyIsValid(t *testing.T) {
	require.NoError(t, UpdateUser(api.UpdateUserRequest{}))
	require.Error(t, UpdateUser(api.UpdateUserRequest{Name: strings.Repeat("x", 101)}))
}

func TestContact(t *testing.T) {
	tests := []struct {
		name    string
		req     api.ContactRequest
		wantErr bool
		errSub  string
	}{
		{
			name: "valid full",
			req:  api.ContactRequest{FirstName: "test", LastName: "test", Email: "test@t.com", Phone: "41242121"},
		},
		{
			name: "valid minimal",
			req:  api.ContactRequest{FirstName: "test"},
		},
		{
			name:    "missing first name",
			req:     api.ContactRequest{LastName: "test"},
			wantErr: true,
			errSub:  "first_name is required",
		},
		{
			name:    "bad email",
			req:     api.ContactRequest{FirstName: "test", Email: "not-an-email"},
			wantErr: true,
			errSub:  "email must be a valid email address",
		},
		{
			name:    "phone too long",
			req:     api.ContactRequest{FirstName: "test", Phone: strings.Repeat("1", 21)},
			wantErr: true,
			errSub:  "phone must not exceed 20 characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Contact(tc.req)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSub)
		})
	}
}

func TestAddress(t *testing.T) {
	require.NoError(t, Address(api.AddressRequest{Country: "test", PostalCode: "2020"}))

	err := Address(api.AddressRequest{Street: "somewhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "country is required")
	assert.Contains(t, err.Error(), "postal_code is required")

	err = Address(api.AddressRequest{Country: "test", PostalCode: strings.Repeat("9", 11)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postal_code must not exceed 10 characters")
}

func TestParsePaging(t *testing.T) {
	tests := []struct {
		name     string
		pageRaw  string
		sizeRaw  string
		wantPage int
		wantSize int
		wantErr  bool
	}{
		{name: "defaults", wantPage: 1, wantSize: 10},
		{name: "explicit", pageRaw: "2", sizeRaw: "25", wantPage: 2, wantSize: 25},
		{name: "size at max", sizeRaw: "100", wantPage: 1, wantSize: 100},
		{name: "page zero rejected", pageRaw: "0", wantErr: true},
		{name: "negative page rejected", pageRaw: "-1", wantErr: true},
		{name: "size zero rejected", sizeRaw: "0", wantErr: true},
		{name: "size over max rejected", sizeRaw: "101", wantErr: true},
		{name: "non-numeric rejected", pageRaw: "abc", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, size, err := ParsePaging(tc.pageRaw, tc.sizeRaw)
			if tc.wantErr {
				require.Error(t, err)
				var vErr *Error
				require.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantSize, size)
		})
	}
}

func TestID(t *testing.T) {
	id, err := ID("contactId", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-5", "abc"} {
		_, err := ID("contactId", raw)
		require.Error(t, err, "raw=%q", raw)
	}
}
