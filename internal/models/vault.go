package models

// Vault maps usernames to their records. Keys are unique and order is
// irrelevant.
type Vault map[string]Record

// NewVault returns an empty vault.
func NewVault() Vault {
	return make(Vault)
}

// Get returns the record stored under username.
func (v Vault) Get(username string) (Record, bool) {
	r, ok := v[username]
	if ok {
		r.Username = username
	}
	return r, ok
}

// Put stores r under username, replacing any previous record, and returns
// the vault for chaining.
func (v Vault) Put(username string, r Record) Vault {
	r.Username = username
	v[username] = r
	return v
}

// Len returns the number of records.
func (v Vault) Len() int {
	return len(v)
}

// Clone returns a shallow copy; records are values so the copy is independent.
func (v Vault) Clone() Vault {
	out := make(Vault, len(v))
	for k, r := range v {
		out[k] = r
	}
	return out
}
