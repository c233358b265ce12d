package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"manualqa/internal/config"
	"manualqa/internal/data/redisStore"
	"manualqa/internal/data/store"
	"manualqa/internal/domain/sessionModel"
)

func TestRedisSessionStoreAppend(t *testing.T) {
	mr := miniredis.RunT(t)
	s := store.NewRedisSessionStore(redisStore.NewTestStore(mr.Addr(), 0))
	ctx := context.Background()

	id, err := s.Append(ctx, sessionModel.SessionRecord{
		Question:     "브레이크 경고등이 켜지면?",
		Answer:       "제동 장치를 점검하세요. (페이지 3)",
		SearchType:   "hybrid",
		ResultsCount: 3,
		Confidence:   0.6,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id == "" {
		t.Fatal("Append returned empty id")
	}

	raw, err := mr.Get(id)
	if err != nil {
		t.Fatalf("record not stored under its id: %v", err)
	}
	var record sessionModel.SessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("stored record not json: %v", err)
	}
	if record.Question != "브레이크 경고등이 켜지면?" || record.Confidence != 0.6 {
		t.Errorf("record = %+v", record)
	}

	ids, err := mr.List(config.SessionLogKey)
	if err != nil {
		t.Fatalf("session list missing: %v", err)
	}
	if len(ids) != 1 || ids[0] != id {
		t.Errorf("session list = %v", ids)
	}
}

func TestRedisSessionStoreAppendOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	s := store.NewRedisSessionStore(redisStore.NewTestStore(mr.Addr(), 0))
	ctx := context.Background()

	first, _ := s.Append(ctx, sessionModel.SessionRecord{Question: "첫 질문"})
	second, _ := s.Append(ctx, sessionModel.SessionRecord{Question: "둘째 질문"})

	ids, err := mr.List(config.SessionLogKey)
	if err != nil {
		t.Fatalf("session list missing: %v", err)
	}
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Errorf("session list = %v, want [%s %s]", ids, first, second)
	}
}

func TestInMemorySessionStore(t *testing.T) {
	s := store.NewInMemorySessionStore()
	ctx := context.Background()

	id, err := s.Append(ctx, sessionModel.SessionRecord{Question: "질문"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id == "" {
		t.Fatal("Append returned empty id")
	}

	records := s.Records()
	if len(records) != 1 || records[0].Id != id {
		t.Errorf("records = %+v", records)
	}
}
