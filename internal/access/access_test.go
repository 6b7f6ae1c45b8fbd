package access

import (
	"errors"
	"testing"

	"go.klb.dev/grasp/internal/selection"
)

func TestMapQuery(t *testing.T) {
	cases := []struct {
		q    Query
		want error
	}{
		{QueryFound, nil},
		{QueryNoFocus, selection.ErrNoFocusedElement},
		{QueryFocusWrongType, selection.ErrNoFocusedElement},
		{QueryNoSelection, selection.ErrNoSelectedContent},
		{QuerySelectionWrongType, selection.ErrNoSelectedContent},
	}
	for _, c := range cases {
		err := MapQuery(c.q)
		if c.want == nil {
			if err != nil {
				t.Errorf("MapQuery(%v) = %v, want nil", c.q, err)
			}
			continue
		}
		if !errors.Is(err, c.want) {
			t.Errorf("MapQuery(%v) = %v, want %v", c.q, err, c.want)
		}
	}
}
