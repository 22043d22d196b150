package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name          string
		total         int64
		page, perPage int
		wantPages     int
		wantNext      bool
		wantPrev      bool
	}{
		{"kosong", 0, 1, 20, 1, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"lewat satu", 21, 1, 20, 2, true, false},
		{"halaman tengah", 100, 3, 20, 5, true, true},
		{"halaman terakhir", 100, 5, 20, 5, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := BuildPaginationFromPage(c.total, c.page, c.perPage)
			if p.TotalPages != c.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, c.wantPages)
			}
			if p.HasNext != c.wantNext || p.HasPrev != c.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, c.wantNext, c.wantPrev)
			}
		})
	}
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name     string
		url      string
		wantPage int
		wantPer  int
		wantOff  int
	}{
		{"default", "/x", 1, 20, 0},
		{"halaman 3", "/x?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "/x?limit=5", 1, 5, 0},
		{"per_page di-cap", "/x?per_page=9999", 1, 100, 0},
		{"page invalid", "/x?page=-2", 1, 20, 0},
		{"per_page invalid", "/x?per_page=abc", 1, 20, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got Paging
			app := fiber.New()
			app.Get("/x", func(ctx *fiber.Ctx) error {
				got = ResolvePaging(ctx, 20, 100)
				return ctx.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", c.url, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			resp.Body.Close()

			if got.Page != c.wantPage || got.PerPage != c.wantPer || got.Offset != c.wantOff {
				t.Errorf("got page=%d per=%d off=%d, want page=%d per=%d off=%d",
					got.Page, got.PerPage, got.Offset, c.wantPage, c.wantPer, c.wantOff)
			}
		})
	}
}
