package services

import (
	"strconv"
	"testing"

	"wish-platform-server/models"
)

// orderedItems builds n items whose stored display_order matches their index.
func orderedItems(n int) []models.GalleryItem {
	items := make([]models.GalleryItem, n)
	for i := range items {
		items[i] = models.GalleryItem{ID: "item-" + strconv.Itoa(i), DisplayOrder: i}
	}
	return items
}

func idsOf(items []models.GalleryItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		src     int
		dst     int
		want    []string
		wantErr bool
	}{
		{
			name: "move forward",
			n:    5, src: 1, dst: 3,
			want: []string{"item-0", "item-2", "item-3", "item-1", "item-4"},
		},
		{
			name: "move backward",
			n:    5, src: 4, dst: 0,
			want: []string{"item-4", "item-0", "item-1", "item-2", "item-3"},
		},
		{
			name: "move to same position",
			n:    3, src: 1, dst: 1,
			want: []string{"item-0", "item-1", "item-2"},
		},
		{
			name: "move first to last",
			n:    4, src: 0, dst: 3,
			want: []string{"item-1", "item-2", "item-3", "item-0"},
		},
		{
			name: "source out of range",
			n:    3, src: 3, dst: 0,
			wantErr: true,
		},
		{
			name: "negative destination",
			n:    3, src: 0, dst: -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moveItem(orderedItems(tt.n), tt.src, tt.dst)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotIDs := idsOf(got)
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", gotIDs, tt.want)
				}
			}
		})
	}
}

// Exactly the items whose array position changed get a renumber, carrying
// their new index.
func TestChangedOrders(t *testing.T) {
	items := orderedItems(5)
	reordered, err := moveItem(items, 1, 3)
	if err != nil {
		t.Fatalf("moveItem: %v", err)
	}

	updates := changedOrders(reordered)

	wantUpdates := map[string]int{
		"item-2": 1,
		"item-3": 2,
		"item-1": 3,
	}
	if len(updates) != len(wantUpdates) {
		t.Fatalf("got %d updates, want %d: %v", len(updates), len(wantUpdates), updates)
	}
	for _, u := range updates {
		want, ok := wantUpdates[u.ID]
		if !ok {
			t.Errorf("unexpected update for %s (position did not change)", u.ID)
			continue
		}
		if u.DisplayOrder != want {
			t.Errorf("update for %s carries order %d, want %d", u.ID, u.DisplayOrder, want)
		}
	}
}

func TestChangedOrdersNoMove(t *testing.T) {
	reordered, err := moveItem(orderedItems(4), 2, 2)
	if err != nil {
		t.Fatalf("moveItem: %v", err)
	}
	if updates := changedOrders(reordered); len(updates) != 0 {
		t.Errorf("no-op move should produce no updates, got %v", updates)
	}
}

// Relative order of all unmoved items is preserved for every (i, j) pair.
func TestMoveItemPreservesRelativeOrder(t *testing.T) {
	const n = 6
	for src := 0; src < n; src++ {
		for dst := 0; dst < n; dst++ {
			got, err := moveItem(orderedItems(n), src, dst)
			if err != nil {
				t.Fatalf("moveItem(%d, %d): %v", src, dst, err)
			}
			if len(got) != n {
				t.Fatalf("moveItem(%d, %d): length %d, want %d", src, dst, len(got), n)
			}

			// Strip the moved item; the remainder must be in original order.
			movedID := "item-" + strconv.Itoa(src)
			prev := -1
			for _, item := range got {
				if item.ID == movedID {
					continue
				}
				if item.DisplayOrder < prev {
					t.Fatalf("moveItem(%d, %d) broke relative order: %v", src, dst, idsOf(got))
				}
				prev = item.DisplayOrder
			}
		}
	}
}
