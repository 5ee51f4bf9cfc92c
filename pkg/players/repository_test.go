package players

import (
	"errors"
	"sync"
	"testing"
)

func TestRepository(t *testing.T) {
	source := NewMemorySource()
	repository := NewRepository(source)

	t.Run("lazy creation on first reference", func(t *testing.T) {
		p, err := repository.GetOrCreate("0xfresh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Level != 1 || p.MaxHP != 100 {
			t.Errorf("expected default record, got level=%d maxHp=%d", p.Level, p.MaxHP)
		}

		// The created record must now exist in the backing source
		if _, err := source.LoadPlayer("0xfresh"); err != nil {
			t.Errorf("record not persisted on creation: %v", err)
		}
	})

	t.Run("update persists mutation", func(t *testing.T) {
		err := repository.Update("0xfresh", func(p *Player) error {
			p.Caps += 25
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p, err := repository.GetOrCreate("0xfresh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Caps != 25 {
			t.Errorf("expected caps 25, got %d", p.Caps)
		}
	})

	t.Run("failed update mutates nothing", func(t *testing.T) {
		boom := errors.New("boom")
		err := repository.Update("0xfresh", func(p *Player) error {
			p.Caps += 1000
			return boom
		})
		if err != boom {
			t.Fatalf("expected fn error returned as is, got %v", err)
		}

		p, _ := repository.GetOrCreate("0xfresh")
		if p.Caps != 25 {
			t.Errorf("aborted update leaked into store: caps=%d", p.Caps)
		}
	})

	t.Run("concurrent updates serialize per wallet", func(t *testing.T) {
		const workers = 50
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_ = repository.Update("0xrace", func(p *Player) error {
					p.Caps++
					return nil
				})
			}()
		}
		wg.Wait()

		p, err := repository.GetOrCreate("0xrace")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Caps != workers {
			t.Errorf("lost updates: expected caps %d, got %d", workers, p.Caps)
		}
	})
}

func TestRepositoryAdjustFaction(t *testing.T) {
	repository := NewRepository(NewMemorySource())

	t.Run("unknown faction rejected", func(t *testing.T) {
		_, err := repository.AdjustFaction("0xabc", "enclave", 5)
		if err != ErrUnknownFaction {
			t.Errorf("expected ErrUnknownFaction, got %v", err)
		}
	})

	t.Run("delta applied and unbounded", func(t *testing.T) {
		p, err := repository.AdjustFaction("0xabc", FactionVault, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Factions[FactionVault] != 6 {
			t.Errorf("expected vault rep 6, got %d", p.Factions[FactionVault])
		}

		p, err = repository.AdjustFaction("0xabc", FactionVault, -20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Factions[FactionVault] != -14 {
			t.Errorf("expected vault rep -14, got %d", p.Factions[FactionVault])
		}
	})
}
