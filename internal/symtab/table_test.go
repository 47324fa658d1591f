package symtab_test

import (
	"fmt"
	"sort"
	"testing"

	"lexa/internal/symtab"
)

func TestInsert_ReturnsStableIDs(t *testing.T) {
	table := symtab.NewTable(0)

	a := table.Insert("a")
	b := table.Insert("b")
	if a == b {
		t.Fatalf("distinct keys share a node: %v", a)
	}
	if !a.IsValid() || !b.IsValid() {
		t.Fatalf("insert returned invalid IDs: %v, %v", a, b)
	}
}

func TestInsert_Idempotent(t *testing.T) {
	table := symtab.NewTable(0)

	first := table.Insert("counter")
	for i := 0; i < 5; i++ {
		if got := table.Insert("counter"); got != first {
			t.Fatalf("repeated insert returned %v, want %v", got, first)
		}
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", table.Len())
	}
}

func TestFind(t *testing.T) {
	table := symtab.NewTable(0)
	id := table.Insert("x")

	got, ok := table.Find("x")
	if !ok || got != id {
		t.Fatalf("Find(%q) = %v, %v; want %v, true", "x", got, ok, id)
	}
	if _, ok := table.Find("y"); ok {
		t.Error("Find reported a key that was never inserted")
	}
	if key := table.KeyOf(id); key != "x" {
		t.Errorf("KeyOf(%v) = %q, want %q", id, key, "x")
	}
}

func TestInOrderKeys_Sorted(t *testing.T) {
	inputs := []string{"b", "a", "c", "aa", "B", "2", "10", "z", "_tmp"}

	table := symtab.NewTable(0)
	for _, k := range inputs {
		table.Insert(k)
	}

	got := table.InOrderKeys()
	want := append([]string(nil), inputs...)
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// Один и тот же набор лексем в любом порядке вставки даёт одну и ту же таблицу.
func TestInOrderKeys_InsertionOrderIrrelevant(t *testing.T) {
	orders := [][]string{
		{"5", "a", "b"},
		{"b", "a", "5"},
		{"a", "5", "b", "a", "5"},
	}

	var baseline []string
	for i, order := range orders {
		table := symtab.NewTable(0)
		for _, k := range order {
			table.Insert(k)
		}
		keys := table.InOrderKeys()
		if i == 0 {
			baseline = keys
			continue
		}
		if fmt.Sprint(keys) != fmt.Sprint(baseline) {
			t.Errorf("order %v produced %v, want %v", order, keys, baseline)
		}
	}
}

// Числовые лексемы сравниваются как байты, не как числа: "10" < "2".
func TestByteLexicographicOrder(t *testing.T) {
	table := symtab.NewTable(0)
	table.Insert("2")
	table.Insert("10")

	keys := table.InOrderKeys()
	if keys[0] != "10" || keys[1] != "2" {
		t.Fatalf(`expected ["10" "2"], got %v`, keys)
	}
}

func TestRanks(t *testing.T) {
	table := symtab.NewTable(0)
	ids := map[string]symtab.NodeID{}
	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		ids[k] = table.Insert(k)
	}

	ranks := table.Ranks()
	if ranks[symtab.NoNodeID] != -1 {
		t.Fatalf("sentinel rank = %d, want -1", ranks[symtab.NoNodeID])
	}

	want := map[string]int64{"alpha": 0, "bravo": 1, "charlie": 2, "delta": 3}
	for key, wantRank := range want {
		if got := ranks[ids[key]]; got != wantRank {
			t.Errorf("rank of %q = %d, want %d", key, got, wantRank)
		}
		got, ok := table.Rank(key)
		if !ok || got != wantRank {
			t.Errorf("Rank(%q) = %d, %v; want %d, true", key, got, ok, wantRank)
		}
	}
}

// Поздняя вставка ключа, который сортируется раньше, сдвигает ранги существующих.
func TestRanks_ShiftOnEarlierInsert(t *testing.T) {
	table := symtab.NewTable(0)
	table.Insert("banana")

	if rank, _ := table.Rank("banana"); rank != 0 {
		t.Fatalf("rank of %q = %d, want 0", "banana", rank)
	}

	table.Insert("apple")
	if rank, _ := table.Rank("apple"); rank != 0 {
		t.Fatalf("rank of %q = %d, want 0", "apple", rank)
	}
	if rank, _ := table.Rank("banana"); rank != 1 {
		t.Fatalf("after inserting %q, rank of %q = %d, want 1", "apple", "banana", rank)
	}
}

func TestRank_Missing(t *testing.T) {
	table := symtab.NewTable(0)
	table.Insert("a")
	if _, ok := table.Rank("zzz"); ok {
		t.Error("Rank reported a key that was never inserted")
	}
}

func TestEmptyTable(t *testing.T) {
	table := symtab.NewTable(0)
	if table.Len() != 0 {
		t.Errorf("empty table Len = %d", table.Len())
	}
	if keys := table.InOrderKeys(); len(keys) != 0 {
		t.Errorf("empty table keys = %v", keys)
	}
	ranks := table.Ranks()
	if len(ranks) != 1 || ranks[symtab.NoNodeID] != -1 {
		t.Errorf("empty table ranks = %v", ranks)
	}
}

func BenchmarkInsert_Sequential(b *testing.B) {
	// худший случай для несбалансированного дерева: отсортированный ввод
	keys := make([]string, 256)
	for i := range keys {
		keys[i] = fmt.Sprintf("v%03d", i)
	}
	for n := 0; n < b.N; n++ {
		table := symtab.NewTable(uint(len(keys)))
		for _, k := range keys {
			table.Insert(k)
		}
	}
}
