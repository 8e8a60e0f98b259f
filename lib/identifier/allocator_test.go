package identifier

import (
	"context"
	archivestore "hr-personnel-backend/lib/employee-archive/store"
	employeestore "hr-personnel-backend/lib/employee/store"
	positionstore "hr-personnel-backend/lib/vacant-position/store"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The fakes embed the store interfaces and override only what the allocator
// touches; any other call panics and fails the test.

type fakeEmployeeStore struct {
	employeestore.Provider
	ids []string
}

func (f fakeEmployeeStore) WithTx(tx *gorm.DB) employeestore.Provider { return f }
func (f fakeEmployeeStore) ListIdentifiersByPrefix(code string) ([]string, error) {
	return f.ids, nil
}
func (f fakeEmployeeStore) IdentifierExists(identifier string) (bool, error) {
	for _, id := range f.ids {
		if id == identifier {
			return true, nil
		}
	}
	return false, nil
}

type fakePositionStore struct {
	positionstore.Provider
	ids []string
}

func (f fakePositionStore) WithTx(tx *gorm.DB) positionstore.Provider { return f }
func (f fakePositionStore) ListIdentifiersByPrefix(code string) ([]string, error) {
	return f.ids, nil
}
func (f fakePositionStore) IdentifierExists(identifier string) (bool, error) {
	for _, id := range f.ids {
		if id == identifier {
			return true, nil
		}
	}
	return false, nil
}

type fakeArchiveStore struct {
	archivestore.Provider
	ids []string
}

func (f fakeArchiveStore) WithTx(tx *gorm.DB) archivestore.Provider { return f }
func (f fakeArchiveStore) ListIdentifiersByPrefix(code string) ([]string, error) {
	return f.ids, nil
}
func (f fakeArchiveStore) IdentifierExists(identifier string) (bool, error) {
	for _, id := range f.ids {
		if id == identifier {
			return true, nil
		}
	}
	return false, nil
}

func newTestAllocator(employees, positions, archives []string) impl {
	return impl{
		employeeStore: fakeEmployeeStore{ids: employees},
		positionStore: fakePositionStore{ids: positions},
		archiveStore:  fakeArchiveStore{ids: archives},
	}
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the lowest gap", func(t *testing.T) {
		alloc := newTestAllocator(
			[]string{"ENG1", "ENG2", "ENG5"},
			nil, nil,
		)
		id, err := alloc.Allocate(nil, "ENG")
		require.NoError(t, err)
		require.Equal(t, "ENG3", id)
	})

	t.Run("starts at one for an empty namespace", func(t *testing.T) {
		alloc := newTestAllocator(nil, nil, nil)
		id, err := alloc.Allocate(nil, "HR")
		require.NoError(t, err)
		require.Equal(t, "HR1", id)
	})

	t.Run("positions and archives block reuse", func(t *testing.T) {
		// ENG2 belongs to an open vacancy, ENG3 only to an archive of a
		// hard-deleted employee; neither may be reissued
		alloc := newTestAllocator(
			[]string{"ENG1"},
			[]string{"ENG2"},
			[]string{"ENG3"},
		)
		id, err := alloc.Allocate(nil, "ENG")
		require.NoError(t, err)
		require.Equal(t, "ENG4", id)
	})

	t.Run("namespaces are independent per org code", func(t *testing.T) {
		alloc := newTestAllocator([]string{"ENG7"}, nil, nil)
		id, err := alloc.Allocate(nil, "MKT")
		require.NoError(t, err)
		require.Equal(t, "MKT1", id)
	})

	t.Run("malformed suffixes are skipped, not fatal", func(t *testing.T) {
		alloc := newTestAllocator(
			[]string{"ENG1", "ENGX", "ENG-old", "ENG2b"},
			nil, nil,
		)
		id, err := alloc.Allocate(nil, "ENG")
		require.NoError(t, err)
		require.Equal(t, "ENG2", id)
	})

	t.Run("missing org code is refused", func(t *testing.T) {
		alloc := newTestAllocator(nil, nil, nil)
		_, err := alloc.Allocate(nil, "")
		require.Error(t, err)
		err = alloc.Locked(ctx, "", func() error { return nil })
		require.Error(t, err)
	})
}

// identifierSet stands in for committed rows: an allocated identifier becomes
// visible to other allocations only when the test adds it.
type identifierSet struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (s *identifierSet) add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = true
}

func (s *identifierSet) list() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]string, 0, len(s.ids))
	for id := range s.ids {
		list = append(list, id)
	}
	return list
}

func (s *identifierSet) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

type fakeSharedEmployeeStore struct {
	employeestore.Provider
	set *identifierSet
}

func (f fakeSharedEmployeeStore) WithTx(tx *gorm.DB) employeestore.Provider { return f }
func (f fakeSharedEmployeeStore) ListIdentifiersByPrefix(code string) ([]string, error) {
	return f.set.list(), nil
}
func (f fakeSharedEmployeeStore) IdentifierExists(identifier string) (bool, error) {
	return f.set.has(identifier), nil
}

func TestAllocateConcurrent(t *testing.T) {
	set := &identifierSet{ids: map[string]bool{}}
	alloc := impl{
		employeeStore: fakeSharedEmployeeStore{set: set},
		positionStore: fakePositionStore{},
		archiveStore:  fakeArchiveStore{},
	}
	ctx := context.Background()

	const workers = 8
	results := make(chan string, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- alloc.Locked(ctx, "HC", func() error {
				id, err := alloc.Allocate(nil, "HC")
				if err != nil {
					return err
				}
				// the inserting transaction commits after Allocate returns;
				// the namespace lock has to cover that window too
				time.Sleep(2 * time.Millisecond)
				set.add(id)
				results <- id
				return nil
			})
		}()
	}
	wg.Wait()
	close(results)
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	issued := map[string]bool{}
	for id := range results {
		require.False(t, issued[id], "identifier %s issued twice", id)
		issued[id] = true
	}
	require.Len(t, issued, workers)
	for n := 1; n <= workers; n++ {
		require.True(t, issued[Format("HC", n)], "gapless sequence expected, HC%d missing", n)
	}
}

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		id     string
		code   string
		number int
		ok     bool
	}{
		{"ENG12", "ENG", 12, true},
		{"ENG1", "ENG", 1, true},
		{"ENG", "ENG", 0, false},
		{"ENGabc", "ENG", 0, false},
		{"MKT3", "ENG", 0, false},
		{"ENG0", "ENG", 0, false},
		{"ENG-1", "ENG", 0, false},
	} {
		number, ok := ParseNumber(tc.id, tc.code)
		require.Equal(t, tc.ok, ok, tc.id)
		require.Equal(t, tc.number, number, tc.id)
	}
}

func TestSplit(t *testing.T) {
	prefix, number := Split("ENG42")
	require.Equal(t, "ENG", prefix)
	require.Equal(t, 42, number)

	prefix, number = Split("ENG")
	require.Equal(t, "ENG", prefix)
	require.Equal(t, 0, number)

	require.Equal(t, "ENG42", Format("ENG", 42))
}
