// Code generated by hand for tests. DO NOT EDIT.

package nofix

import "test/memo"

func Generated(title string) memo.View[string] {
	return memo.View[string]{Deps: []any{}, Render: func() string { return title }}
}
