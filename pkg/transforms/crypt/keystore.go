package crypt

import (
	"crypto/rand"
	"encoding/base64"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"golang.org/x/crypto/nacl/box"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

const (
	publicKeyFile  = "public.key"
	privateKeyFile = "private.key"
	lockFile       = ".lock"
	keySize        = 32
)

// DefaultKeyDir returns the key directory under the XDG data home
func DefaultKeyDir() string {
	return filepath.Join(xdg.DataHome, "ruleflow", "keys")
}

// KeyStore holds the X25519 key pair used by the crypt rules.
// Keys are generated on first use and cached for the life of the store.
// The in-process mutex serializes goroutines; the flock serializes
// processes sharing the directory.
type KeyStore struct {
	dir string

	mu   sync.Mutex
	pub  *[keySize]byte
	priv *[keySize]byte
}

// NewKeyStore creates a store rooted at dir
func NewKeyStore(dir string) *KeyStore {
	return &KeyStore{dir: dir}
}

// Check reports whether the key directory could be used, without touching
// the filesystem. A missing directory is fine; it is created on first use.
func (k *KeyStore) Check() error {
	if k.dir == "" {
		return errors.New(errors.ErrKeyAccess, "key directory is not set")
	}
	info, err := os.Stat(k.dir)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return errors.Wrapf(err, errors.ErrKeyAccess, "cannot access key directory %s", k.dir)
	case !info.IsDir():
		return errors.Newf(errors.ErrKeyAccess, "key directory %s is not a directory", k.dir)
	}
	return nil
}

// Keys returns the key pair, loading or generating it under the file lock
func (k *KeyStore) Keys() (pub, priv *[keySize]byte, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pub != nil {
		return k.pub, k.priv, nil
	}

	if err := k.Check(); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(k.dir, 0700); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrKeyAccess, "cannot create key directory %s", k.dir)
	}

	lock := flock.New(filepath.Join(k.dir, lockFile))
	if err := lock.Lock(); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrKeyAccess, "cannot lock key directory %s", k.dir)
	}
	defer func() { _ = lock.Unlock() }()

	pub, priv, err = k.load()
	if stderrors.Is(err, fs.ErrNotExist) {
		pub, priv, err = k.generate()
	}
	if err != nil {
		return nil, nil, err
	}

	k.pub, k.priv = pub, priv
	return pub, priv, nil
}

func (k *KeyStore) load() (*[keySize]byte, *[keySize]byte, error) {
	pub, err := readKey(filepath.Join(k.dir, publicKeyFile))
	if err != nil {
		return nil, nil, err
	}
	priv, err := readKey(filepath.Join(k.dir, privateKeyFile))
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

func (k *KeyStore) generate() (*[keySize]byte, *[keySize]byte, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrKeyAccess, "cannot generate key pair")
	}
	if err := writeKey(filepath.Join(k.dir, privateKeyFile), priv); err != nil {
		return nil, nil, err
	}
	if err := writeKey(filepath.Join(k.dir, publicKeyFile), pub); err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

func readKey(path string) (*[keySize]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrKeyAccess, "cannot read key %s", path)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil || len(raw) != keySize {
		return nil, errors.Newf(errors.ErrKeyAccess, "key %s is corrupt", path)
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

func writeKey(path string, key *[keySize]byte) error {
	data := base64.StdEncoding.EncodeToString(key[:]) + "\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrKeyAccess, "cannot write key %s", path)
	}
	return nil
}
