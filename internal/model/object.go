package model

// Entry is a single key/value pair of an Object.
type Entry struct {
	Key   string
	Value *Value
}

// Object is a mapping that remembers insertion order. Overwriting a key keeps
// its position.
type Object struct {
	entries []Entry
	index   map[string]int
}

func newObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.entries)
}

// Keys returns the keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}

	return keys
}

// Entries returns the entries in order. The slice must not be modified.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}

	return o.entries
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}

	i, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.entries[i].Value, true
}

// Set stores value under key, appending key if it is new.
func (o *Object) Set(key string, value *Value) {
	if i, ok := o.index[key]; ok {
		o.entries[i].Value = value
		return
	}

	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}

	o.entries = append(o.entries[:i], o.entries[i+1:]...)
	delete(o.index, key)

	for j := i; j < len(o.entries); j++ {
		o.index[o.entries[j].Key] = j
	}

	return true
}
