// Test Type: Unit Test
// Description: Tests for the crypt provider - round trip, key persistence, availability

package crypt_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/transforms/crypt"
	"github.com/arthur-debert/ruleflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handlers(t *testing.T, p *crypt.Provider) (enc, dec types.Handler) {
	t.Helper()
	descs, err := p.Descriptors()
	require.NoError(t, err)
	require.Len(t, descs, 2)
	for _, d := range descs {
		assert.Equal(t, types.CategoryCrypto, d.Category)
		switch d.Code {
		case "enc":
			enc = d.Handler
		case "dec":
			dec = d.Handler
		}
	}
	require.NotNil(t, enc)
	require.NotNil(t, dec)
	return enc, dec
}

func TestCrypt_RoundTrip(t *testing.T) {
	p := crypt.New(crypt.Options{Enabled: true, KeyDir: t.TempDir()})
	enc, dec := handlers(t, p)

	sealed, err := enc.Apply("attack at dawn", nil)
	require.NoError(t, err)
	assert.NotEqual(t, "attack at dawn", sealed)

	plain, err := dec.Apply(sealed+"\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", plain)
}

func TestCrypt_KeysPersistAcrossProviders(t *testing.T) {
	dir := t.TempDir()

	enc, _ := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: dir}))
	sealed, err := enc.Apply("hello", nil)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "public.key"))
	info, err := os.Stat(filepath.Join(dir, "private.key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	_, dec := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: dir}))
	plain, err := dec.Apply(sealed, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)
}

func TestCrypt_ForeignCiphertext(t *testing.T) {
	enc, _ := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: t.TempDir()}))
	_, dec := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: t.TempDir()}))

	sealed, err := enc.Apply("hello", nil)
	require.NoError(t, err)

	_, err = dec.Apply(sealed, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = dec.Apply("not base64!", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCrypt_ConcurrentFirstUse(t *testing.T) {
	enc, dec := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: t.TempDir()}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sealed, err := enc.Apply("x", nil)
			if !assert.NoError(t, err) {
				return
			}
			plain, err := dec.Apply(sealed, nil)
			assert.NoError(t, err)
			assert.Equal(t, "x", plain)
		}()
	}
	wg.Wait()
}

func TestCrypt_Disabled(t *testing.T) {
	p := crypt.New(crypt.Options{Enabled: false, KeyDir: t.TempDir()})
	assert.Equal(t, []string{"enc", "dec"}, p.Codes())

	descs, err := p.Descriptors()
	assert.Nil(t, descs)
	assert.Error(t, err)
}

func TestCrypt_UnusableKeyDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	p := crypt.New(crypt.Options{Enabled: true, KeyDir: filepath.Join(file, "keys")})
	_, err := p.Descriptors()
	assert.True(t, errors.IsErrorCode(err, errors.ErrKeyAccess))
}

func TestCrypt_KeyDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keys")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := crypt.New(crypt.Options{Enabled: true, KeyDir: file}).Descriptors()
	assert.True(t, errors.IsErrorCode(err, errors.ErrKeyAccess))
	assert.Contains(t, err.Error(), "not a directory")
}

func TestCrypt_KeyDirCreatedOnFirstUse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "keys")
	enc, _ := handlers(t, crypt.New(crypt.Options{Enabled: true, KeyDir: dir}))
	assert.NoDirExists(t, dir, "listing the rules must not touch the key directory")

	_, err := enc.Apply("hello", nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{".lock", "private.key", "public.key"}, names)
}

func TestDefaultKeyDir(t *testing.T) {
	assert.Equal(t, filepath.Join("ruleflow", "keys"), filepath.Join(filepath.Base(filepath.Dir(crypt.DefaultKeyDir())), filepath.Base(crypt.DefaultKeyDir())))
}
