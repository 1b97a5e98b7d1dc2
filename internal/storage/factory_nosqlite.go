//go:build !sqlite

package storage

import "errors"

func newSQLiteStore(_ string) (Store, error) {
	return nil, errors.New("this binary was built without sqlite support; rebuild with -tags sqlite")
}
