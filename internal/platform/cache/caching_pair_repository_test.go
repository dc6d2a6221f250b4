package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"lpclass_backend/internal/feature/pairs/domain/entity"
)

// mockPairRepository はテスト用のPairRepositoryモック実装です。
type mockPairRepository struct {
	listFn func(ctx context.Context, chain string) ([]entity.Pair, error)
	calls  int
}

// ListPairs はモックのListPairs関数を呼び出します。
func (m *mockPairRepository) ListPairs(ctx context.Context, chain string) ([]entity.Pair, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, chain)
	}
	return nil, nil
}

type stubRecorder struct {
	mu     sync.Mutex
	events []string
}

func (s *stubRecorder) ObserveCache(cache, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, cache+":"+result)
}

var samplePairs = []entity.Pair{
	{ChainID: "solana", DexID: "raydium", PairAddress: "pair1", Volume24h: 1000, Buys24h: 3, Sells24h: 4},
}

// TestNewCachingPairRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingPairRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", DefaultTTL, "pairs"},
		{"negative ttl uses default", -time.Minute, "", DefaultTTL, "pairs"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingPairRepository(nil, nil, tt.ttl, &mockPairRepository{}, tt.namespace)
			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingPairRepository_NoCache はキャッシュ未設定の場合に毎回内部リポジトリを呼び出すことを検証します。
func TestCachingPairRepository_NoCache(t *testing.T) {
	t.Parallel()

	inner := &mockPairRepository{
		listFn: func(ctx context.Context, chain string) ([]entity.Pair, error) { return samplePairs, nil },
	}
	repo := NewCachingPairRepository(nil, nil, time.Minute, inner, "pairs")

	for i := 0; i < 2; i++ {
		if _, err := repo.ListPairs(context.Background(), "solana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.calls != 2 {
		t.Errorf("expected 2 inner calls, got %d", inner.calls)
	}
	if repo.Backend() != "none" {
		t.Errorf("expected backend none, got %q", repo.Backend())
	}
}

// TestCachingPairRepository_Redis_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingPairRepository_Redis_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(samplePairs)
	mock.ExpectGet("pairs:solana").SetVal(string(cachedJSON))

	inner := &mockPairRepository{}
	rec := &stubRecorder{}
	repo := NewCachingPairRepository(rdb, nil, time.Minute, inner, "pairs").WithRecorder(rec)

	pairs, err := repo.ListPairs(context.Background(), "solana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 0 {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(pairs) != 1 || pairs[0].PairAddress != "pair1" || pairs[0].TxCount24h() != 7 {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
	if len(rec.events) != 1 || rec.events[0] != "redis:hit" {
		t.Errorf("unexpected events: %v", rec.events)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingPairRepository_Redis_CacheMiss はキャッシュミス時に上流から取得してキャッシュに保存することを検証します。
func TestCachingPairRepository_Redis_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(samplePairs)
	mock.ExpectGet("pairs:solana").RedisNil()
	mock.ExpectSet("pairs:solana", expectedJSON, time.Minute).SetVal("OK")

	inner := &mockPairRepository{
		listFn: func(ctx context.Context, chain string) ([]entity.Pair, error) { return samplePairs, nil },
	}
	repo := NewCachingPairRepository(rdb, nil, time.Minute, inner, "pairs")

	pairs, err := repo.ListPairs(context.Background(), "solana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Errorf("expected 1 pair, got %d", len(pairs))
	}
	if repo.Backend() != "redis" {
		t.Errorf("expected backend redis, got %q", repo.Backend())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingPairRepository_Redis_InnerError は上流エラーが伝播し、キャッシュされないことを検証します。
func TestCachingPairRepository_Redis_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("upstream error")
	mock.ExpectGet("pairs:solana").RedisNil()

	inner := &mockPairRepository{
		listFn: func(ctx context.Context, chain string) ([]entity.Pair, error) { return nil, expectedErr },
	}
	repo := NewCachingPairRepository(rdb, nil, time.Minute, inner, "pairs")

	_, err := repo.ListPairs(context.Background(), "solana")
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingPairRepository_Redis_CorruptedCache は破損したキャッシュを削除して上流にフォールバックすることを検証します。
func TestCachingPairRepository_Redis_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(samplePairs)
	mock.ExpectGet("pairs:solana").SetVal("invalid json")
	mock.ExpectDel("pairs:solana").SetVal(1)
	mock.ExpectSet("pairs:solana", expectedJSON, time.Minute).SetVal("OK")

	inner := &mockPairRepository{
		listFn: func(ctx context.Context, chain string) ([]entity.Pair, error) { return samplePairs, nil },
	}
	repo := NewCachingPairRepository(rdb, nil, time.Minute, inner, "pairs")

	if _, err := repo.ListPairs(context.Background(), "solana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingPairRepository_Local はRedisがない場合にインプロセスキャッシュが使われることを検証します。
func TestCachingPairRepository_Local(t *testing.T) {
	t.Parallel()

	local, err := NewLocalCache()
	if err != nil {
		t.Fatalf("failed to create local cache: %v", err)
	}
	defer local.Close()

	inner := &mockPairRepository{
		listFn: func(ctx context.Context, chain string) ([]entity.Pair, error) { return samplePairs, nil },
	}
	rec := &stubRecorder{}
	repo := NewCachingPairRepository(nil, local, time.Minute, inner, "pairs").WithRecorder(rec)

	if repo.Backend() != "memory" {
		t.Errorf("expected backend memory, got %q", repo.Backend())
	}
	if _, err := repo.ListPairs(context.Background(), "solana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	local.Wait()

	pairs, err := repo.ListPairs(context.Background(), "solana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if len(pairs) != 1 {
		t.Errorf("expected 1 pair, got %d", len(pairs))
	}
	if len(rec.events) != 2 || rec.events[0] != "memory:miss" || rec.events[1] != "memory:hit" {
		t.Errorf("unexpected events: %v", rec.events)
	}
}

// TestSafe はsafe関数がRedisキーで問題となる文字を正しくエスケープすることを検証します。
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"solana", "solana"},
		{"bsc chain", "bsc_chain"},
		{"key:value", "key_value"},
		{"", ""},
		{"::", "__"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := safe(tt.input); got != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
