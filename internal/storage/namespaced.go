package storage

// Namespaced prefixes every key with a fixed namespace so several players
// can share one backend.
type Namespaced struct {
	kv     KV
	prefix string
}

// WithNamespace wraps kv so all keys live under ns. An empty namespace
// returns kv unchanged.
func WithNamespace(kv KV, ns string) KV {
	if ns == "" {
		return kv
	}
	return &Namespaced{kv: kv, prefix: ns + "/"}
}

// Get implements KV.
func (n *Namespaced) Get(key string) (string, bool, error) {
	return n.kv.Get(n.prefix + key)
}

// Set implements KV.
func (n *Namespaced) Set(key, value string) error {
	return n.kv.Set(n.prefix+key, value)
}

// Delete implements KV.
func (n *Namespaced) Delete(key string) error {
	return n.kv.Delete(n.prefix + key)
}
