package redis

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/google/uuid"
)

func categoryID(m converter.CategoryListItemRedisModel) uuid.UUID { return m.ID }

func testPage(t *testing.T, models []converter.CategoryListItemRedisModel) []byte {
	t.Helper()
	data, err := json.Marshal(models)
	if err != nil {
		t.Fatalf("marshal page: %v", err)
	}
	return data
}

func decodePage(t *testing.T, data []byte) []converter.CategoryListItemRedisModel {
	t.Helper()
	var models []converter.CategoryListItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	return models
}

func TestUpsertPageItem_ReplacesInPlace(t *testing.T) {
	existing := converter.CategoryListItemRedisModel{ID: uuid.New(), Name: "shoes"}
	other := converter.CategoryListItemRedisModel{ID: uuid.New(), Name: "hats"}
	page := testPage(t, []converter.CategoryListItemRedisModel{existing, other})

	renamed := existing
	renamed.Name = "sneakers"

	next, changed, err := upsertPageItem(page, renamed, categoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatal("page must be marked changed")
	}

	models := decodePage(t, next)
	if len(models) != 2 {
		t.Fatalf("got %d items, want 2", len(models))
	}
	if models[0].Name != "sneakers" {
		t.Errorf("existing item must be replaced in place, got %q", models[0].Name)
	}
	if models[1] != other {
		t.Errorf("untouched item must survive: %+v", models[1])
	}
}

func TestUpsertPageItem_AppendsWhenAbsent(t *testing.T) {
	existing := converter.CategoryListItemRedisModel{ID: uuid.New(), Name: "shoes"}
	page := testPage(t, []converter.CategoryListItemRedisModel{existing})

	added := converter.CategoryListItemRedisModel{ID: uuid.New(), Name: "hats"}

	next, changed, err := upsertPageItem(page, added, categoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatal("page must be marked changed")
	}

	models := decodePage(t, next)
	if len(models) != 2 || models[1] != added {
		t.Errorf("absent item must be appended, got %+v", models)
	}
}

func TestUpsertPageItem_RepeatedPatchKeepsSingleEntry(t *testing.T) {
	added := converter.CategoryListItemRedisModel{ID: uuid.New(), Name: "hats"}
	page := testPage(t, nil)

	var err error
	for i := 0; i < 2; i++ {
		page, _, err = upsertPageItem(page, added, categoryID)
		if err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	models := decodePage(t, page)
	if len(models) != 1 || models[0] != added {
		t.Errorf("page holds %d entries for one id, want 1", len(models))
	}
}

func TestUpsertPageItem_BadPayload(t *testing.T) {
	item := converter.CategoryListItemRedisModel{ID: uuid.New()}

	if _, _, err := upsertPageItem([]byte("not json"), item, categoryID); err == nil {
		t.Fatal("corrupted page must surface an error")
	}
}
