package storage

// Profile is a Store view scoped to one profile name. It satisfies the
// game's preference interface.
type Profile struct {
	store *Store
	name  string
}

// Profile returns a view of the store for the given profile.
func (s *Store) Profile(name string) *Profile {
	return &Profile{store: s, name: name}
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// Int returns the stored value for key, or def when nothing is stored.
func (p *Profile) Int(key string, def int) (int, error) {
	return p.store.Int(p.name, key, def)
}

// SetInt stores value under key.
func (p *Profile) SetInt(key string, value int) error {
	return p.store.SetInt(p.name, key, value)
}
