package job

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	jsonGetMultiFn func(ctx context.Context, keys []string, path string) ([][]byte, error)
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys, path)
	}
	return nil, nil
}
