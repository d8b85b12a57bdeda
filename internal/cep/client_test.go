package cep_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobicrm/internal/cep"
)

func TestLookupResolvesAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01310100/json/", r.URL.Path)
		fmt.Fprint(w, `{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`)
	}))
	defer srv.Close()

	addr, err := cep.NewClient(srv.URL).Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.District)
	assert.Equal(t, "São Paulo / SP", addr.CityRegion)
	assert.Equal(t, "01310-100", addr.PostalCode)
}

func TestLookupUnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"erro": true}`)
	}))
	defer srv.Close()

	addr, err := cep.NewClient(srv.URL).Lookup(context.Background(), "99999999")
	assert.NoError(t, err)
	assert.Nil(t, addr)
}

func TestLookupRejectsMalformedInput(t *testing.T) {
	c := cep.NewClient("http://unused.invalid")
	for _, code := range []string{"", "1234", "12345-6789", "abcdefgh"} {
		_, err := c.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, cep.ErrInvalidCEP, code)
	}
}

// Server errors are retried; the lookup succeeds once the service
// recovers.
func TestLookupRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`)
	}))
	defer srv.Close()

	addr, err := cep.NewClient(srv.URL).Lookup(context.Background(), "01310100")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestLookupGivesUpOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := cep.NewClient(srv.URL).Lookup(context.Background(), "01310100")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
