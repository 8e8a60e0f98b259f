package identifier

import (
	"context"
	"fmt"
	"hr-personnel-backend/db"
	archivestore "hr-personnel-backend/lib/employee-archive/store"
	employeestore "hr-personnel-backend/lib/employee/store"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	"hr-personnel-backend/lib/utils/lock"
	positionstore "hr-personnel-backend/lib/vacant-position/store"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	lockWait = 10 * time.Second
	// maxCollisionRetries bounds the upward scan after the first candidate.
	// Hitting it means something is flooding the namespace; fail loudly.
	maxCollisionRetries = 1000
)

// Provider allocates public identifiers scoped to an org code. Employees,
// vacant positions, and archives share one namespace per code; a number once
// issued is never reused, even after its holder is hard-deleted.
type Provider interface {
	// Locked serializes allocating transactions per org code. fn must span the
	// entire transaction that inserts the allocated identifier: an identifier
	// is invisible to other transactions until commit, so releasing the lock
	// any earlier lets a concurrent allocation re-check against pre-commit
	// state and walk away with the same number.
	Locked(ctx context.Context, orgCode string, fn func() error) error
	// Allocate returns the lowest positive N such that "<code>N" is unused,
	// re-checking uniqueness under the caller's transaction before returning.
	// Callers run it inside Locked for the same org code.
	Allocate(tx *gorm.DB, orgCode string) (identifier string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore: employeestore.NewInstance(db.DB),
		positionStore: positionstore.NewInstance(db.DB),
		archiveStore:  archivestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
		"positionStore", instance.positionStore,
		"archiveStore", instance.archiveStore,
	)
	Instance = instance
}

type impl struct {
	employeeStore employeestore.Provider
	positionStore positionstore.Provider
	archiveStore  archivestore.Provider
}

func (i impl) Locked(ctx context.Context, orgCode string, fn func() error) error {
	if orgCode == "" {
		return errors.New("org code is not set, identifier allocation refused")
	}
	success, err := lock.WithDelay(ctx, "identifier-alloc:"+orgCode, lockWait, fn)
	if err != nil {
		return err
	}
	if !success {
		return errors.Errorf("identifier allocation for code %s timed out waiting for lock", orgCode)
	}
	return nil
}

func (i impl) Allocate(tx *gorm.DB, orgCode string) (identifier string, err error) {
	if orgCode == "" {
		return "", errors.New("org code is not set, identifier allocation refused")
	}
	return i.allocate(tx, orgCode)
}

func (i impl) allocate(tx *gorm.DB, orgCode string) (string, error) {
	used, err := i.collectUsedNumbers(tx, orgCode)
	if err != nil {
		return "", errors.Wrap(err, "identifier collection failed")
	}
	number := 1
	for used[number] {
		number++
	}
	// Close the race between concurrent allocations: re-check the candidate
	// under the transaction and step upward on collision.
	for attempt := 0; attempt < maxCollisionRetries; attempt++ {
		candidate := orgCode + strconv.Itoa(number)
		taken, err := i.isTaken(tx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "identifier uniqueness re-check failed")
		}
		if !taken {
			return candidate, nil
		}
		number++
		for used[number] {
			number++
		}
	}
	return "", errors.Errorf("no free identifier found for code %s after %d attempts", orgCode, maxCollisionRetries)
}

func (i impl) collectUsedNumbers(tx *gorm.DB, orgCode string) (map[int]bool, error) {
	used := map[int]bool{}
	sources := []func(code string) ([]string, error){
		i.employeeStore.WithTx(tx).ListIdentifiersByPrefix,
		i.positionStore.WithTx(tx).ListIdentifiersByPrefix,
		i.archiveStore.WithTx(tx).ListIdentifiersByPrefix,
	}
	for _, source := range sources {
		list, err := source(orgCode)
		if err != nil {
			return nil, err
		}
		for _, id := range list {
			// Malformed legacy identifiers (non-numeric suffix) are ignored.
			if number, ok := ParseNumber(id, orgCode); ok {
				used[number] = true
			}
		}
	}
	return used, nil
}

func (i impl) isTaken(tx *gorm.DB, candidate string) (bool, error) {
	checks := []func(identifier string) (bool, error){
		i.employeeStore.WithTx(tx).IdentifierExists,
		i.positionStore.WithTx(tx).IdentifierExists,
		i.archiveStore.WithTx(tx).IdentifierExists,
	}
	for _, check := range checks {
		exists, err := check(candidate)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

// ParseNumber extracts the numeric suffix of an identifier under the given
// org code. Returns ok=false for foreign prefixes and non-numeric suffixes.
func ParseNumber(identifier, orgCode string) (number int, ok bool) {
	suffix, found := strings.CutPrefix(identifier, orgCode)
	if !found || suffix == "" {
		return 0, false
	}
	number, err := strconv.Atoi(suffix)
	if err != nil || number <= 0 {
		return 0, false
	}
	return number, true
}

// Split breaks a public identifier into its alphabetic prefix and numeric
// suffix for natural ordering in listings.
func Split(identifier string) (prefix string, number int) {
	idx := len(identifier)
	for idx > 0 && identifier[idx-1] >= '0' && identifier[idx-1] <= '9' {
		idx--
	}
	number, _ = strconv.Atoi(identifier[idx:])
	return identifier[:idx], number
}

// Format renders an identifier from code and number. Kept next to ParseNumber
// so the two stay symmetrical.
func Format(orgCode string, number int) string {
	return fmt.Sprintf("%s%d", orgCode, number)
}
