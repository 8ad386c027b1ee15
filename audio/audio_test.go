// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"testing"
)

// nopDecoder is a Decoder stand-in carrying an id so lookups can be
// told apart.
type nopDecoder struct{ id int }

func (nopDecoder) Decode(io.Reader) (Source, error) { return nil, io.ErrUnexpectedEOF }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", nopDecoder{id: 1})
	reg.Register("mp3", nopDecoder{id: 2})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(wav) not found")
	}
	if dec.(nopDecoder).id != 1 {
		t.Errorf("Get(wav) id = %d, want 1", dec.(nopDecoder).id)
	}

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(flac) found, want missing")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", nopDecoder{id: 1})
	reg.Register("wav", nopDecoder{id: 2})

	dec, ok := reg.Get("wav")
	if !ok || dec.(nopDecoder).id != 2 {
		t.Errorf("Get(wav) = %v, %v, want id 2", dec, ok)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Register("wav", nopDecoder{id: i})
			reg.Get("wav")
		}()
	}
	wg.Wait()

	if _, ok := reg.Get("wav"); !ok {
		t.Error("Get(wav) not found after concurrent registers")
	}
}
