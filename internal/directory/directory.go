package directory

import (
	"fmt"
	"sort"
	"sync"
)

// Options tunes directory behaviour.
type Options struct {
	// EnforceCapacity rejects Enroll with ErrActivityFull once MaxParticipants is reached.
	// Off by default: capacity is stored and reported but not enforced.
	EnforceCapacity bool
}

// Directory is the in-memory activity directory.
type Directory struct {
	mu   sync.RWMutex
	data map[string]*Activity
	opts Options
}

// New builds a directory from a seed set. The seed is copied, so later changes
// to it do not leak into the directory.
func New(seed map[string]Activity, opts Options) *Directory {
	data := make(map[string]*Activity, len(seed))
	for name, a := range seed {
		c := a.clone()
		c.Name = name
		data[name] = &c
	}
	return &Directory{data: data, opts: opts}
}

func (d *Directory) List() map[string]Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]Activity, len(d.data))
	for name, a := range d.data {
		out[name] = a.clone()
	}
	return out
}

func (d *Directory) Get(name string) (Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.data[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return a.clone(), nil
}

// Names returns the activity names in lexical order.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.data))
	for name := range d.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Directory) Enroll(name, email string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.data[name]
	if !ok {
		return "", ErrActivityNotFound
	}
	if a.IsMember(email) {
		return "", ErrAlreadySignedUp
	}
	if d.opts.EnforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return "", ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

func (d *Directory) Withdraw(name, email string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.data[name]
	if !ok {
		return "", ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return fmt.Sprintf("Removed %s from %s", email, name), nil
		}
	}
	return "", ErrParticipantNotFound
}
