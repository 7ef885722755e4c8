package memory

import (
	"sync"
	"testing"

	"notably-be/internal/entity"
)

func TestProductRepositoryAppendAssignsNextId(t *testing.T) {
	repo := NewProductRepository()
	repo.Seed(DefaultCatalog()...)

	created := repo.Append(&entity.Product{Name: "Desk Lamp", Price: 34.99})
	if created.Id != 4 {
		t.Errorf("appended product id = %d, want 4", created.Id)
	}
	if repo.Count() != 4 {
		t.Errorf("count = %d, want 4", repo.Count())
	}
}

func TestProductRepositorySeedReassignsIds(t *testing.T) {
	repo := NewProductRepository()
	repo.Seed(
		&entity.Product{Id: 99, Name: "A"},
		&entity.Product{Id: 7, Name: "B"},
	)

	all := repo.All()
	if all[0].Id != 1 || all[1].Id != 2 {
		t.Errorf("seeded ids = %d, %d, want 1, 2", all[0].Id, all[1].Id)
	}
}

func TestProductRepositoryConcurrentAppend(t *testing.T) {
	repo := NewProductRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Append(&entity.Product{Name: "p", Price: 1})
		}()
	}
	wg.Wait()

	if repo.Count() != 50 {
		t.Fatalf("count = %d, want 50", repo.Count())
	}

	// Every id from 1..50 must appear exactly once.
	seen := make(map[int]bool)
	for _, p := range repo.All() {
		if seen[p.Id] {
			t.Fatalf("duplicate id %d", p.Id)
		}
		seen[p.Id] = true
	}
	for id := 1; id <= 50; id++ {
		if !seen[id] {
			t.Errorf("missing id %d", id)
		}
	}
}

func TestChatHistoryRepositoryEvictsOldest(t *testing.T) {
	repo := NewChatHistoryRepository(3)

	for _, msg := range []string{"a", "b", "c", "d"} {
		repo.Append(&entity.ChatExchange{User: msg, Bot: "You said: " + msg})
	}

	all := repo.All()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].User != "b" || all[2].User != "d" {
		t.Errorf("window = [%s..%s], want [b..d]", all[0].User, all[2].User)
	}
}
