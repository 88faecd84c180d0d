package paging

import "testing"

func TestFromQuery(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
	}{
		{"defaults", "", "", 1, 20},
		{"explicit", "3", "50", 3, 50},
		{"garbage", "abc", "-5", 1, 20},
		{"zero page", "0", "10", 1, 10},
		{"size capped", "1", "500", 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := FromQuery(tc.page, tc.size)
			if p.Page != tc.wantPage || p.PageSize != tc.wantSize {
				t.Fatalf("FromQuery(%q, %q) = %+v, want page %d size %d",
					tc.page, tc.size, p, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestLimitOffset(t *testing.T) {
	limit, offset := Params{Page: 3, PageSize: 25}.LimitOffset()
	if limit != 25 || offset != 50 {
		t.Fatalf("LimitOffset = (%d, %d), want (25, 50)", limit, offset)
	}
}

func TestNewResponse(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 7, Params{Page: 2, PageSize: 3})
	if !r.HasNext {
		t.Fatal("page 2 of 7 items at size 3 should have a next page")
	}
	if !r.HasPrev {
		t.Fatal("page 2 should have a previous page")
	}

	last := NewResponse([]int{7}, 7, Params{Page: 3, PageSize: 3})
	if last.HasNext {
		t.Fatal("last page should not report a next page")
	}

	empty := NewResponse[string](nil, 0, Params{Page: 1, PageSize: 20})
	if empty.Items == nil {
		t.Fatal("items should marshal as an empty array, not null")
	}
}
