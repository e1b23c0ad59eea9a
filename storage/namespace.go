package storage

import "context"

type namespaced struct {
	inner  Storage
	prefix string
}

// Namespace scopes every key of s under prefix, e.g. "session:abc:".
func Namespace(s Storage, prefix string) Storage {
	return &namespaced{inner: s, prefix: prefix}
}

// SessionPrefix is the namespace of one storefront session.
func SessionPrefix(sessionID string) string {
	return "session:" + sessionID + ":"
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.prefix+key)
}
