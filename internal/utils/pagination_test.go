package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func paramsFromQuery(t *testing.T, query string) *PaginationParams {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)

	return GetPaginationParams(c, "created_at")
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsFromQuery(t, "")

	if params.Page != 1 {
		t.Errorf("expected page 1, got %d", params.Page)
	}
	if params.PerPage != DefaultPageSize {
		t.Errorf("expected per_page %d, got %d", DefaultPageSize, params.PerPage)
	}
	if params.Sort != "created_at" {
		t.Errorf("expected default sort created_at, got %s", params.Sort)
	}
	if params.Order != "desc" {
		t.Errorf("expected default order desc, got %s", params.Order)
	}
}

func TestGetPaginationParamsBounds(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"negative page", "page=-1", 1, DefaultPageSize},
		{"zero page", "page=0", 1, DefaultPageSize},
		{"per_page above max", "per_page=500", 1, MaxPageSize},
		{"per_page zero", "per_page=0", 1, DefaultPageSize},
		{"valid values", "page=3&per_page=25", 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsFromQuery(t, tt.query)
			if params.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, params.Page)
			}
			if params.PerPage != tt.wantPerPage {
				t.Errorf("expected per_page %d, got %d", tt.wantPerPage, params.PerPage)
			}
		})
	}
}

func TestGetSkip(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 25}
	if skip := params.GetSkip(); skip != 50 {
		t.Errorf("expected skip 50, got %d", skip)
	}
}

func TestGetSortOptionsTiebreaker(t *testing.T) {
	tests := []struct {
		name      string
		order     string
		wantValue int
	}{
		{"descending", "desc", -1},
		{"ascending", "asc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &PaginationParams{Page: 2, PerPage: 10, Sort: "booking_time", Order: tt.order}
			opts := params.GetSortOptions()

			sort, ok := opts.Sort.(bson.D)
			if !ok {
				t.Fatalf("expected bson.D sort, got %T", opts.Sort)
			}
			if len(sort) != 2 {
				t.Fatalf("expected sort field plus _id tiebreaker, got %v", sort)
			}
			if sort[0].Key != "booking_time" || sort[0].Value != tt.wantValue {
				t.Errorf("unexpected primary sort: %v", sort[0])
			}
			if sort[1].Key != "_id" || sort[1].Value != tt.wantValue {
				t.Errorf("rows sharing a sort value need a deterministic _id order, got %v", sort[1])
			}
			if *opts.Skip != 10 || *opts.Limit != 10 {
				t.Errorf("expected skip/limit 10/10, got %d/%d", *opts.Skip, *opts.Limit)
			}
		})
	}
}

func TestGetSearchFilter(t *testing.T) {
	params := &PaginationParams{Search: "ahmed"}
	filter := params.GetSearchFilter([]string{"name", "email"})

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatal("expected $or list in search filter")
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(or))
	}

	cond, ok := or[0]["name"].(bson.M)
	if !ok {
		t.Fatal("expected regex condition on name")
	}
	if cond["$regex"] != "ahmed" || cond["$options"] != "i" {
		t.Errorf("expected case-insensitive regex on ahmed, got %v", cond)
	}
}

func TestGetSearchFilterEmpty(t *testing.T) {
	params := &PaginationParams{Search: ""}
	filter := params.GetSearchFilter([]string{"name"})
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}
}

func TestCreatePaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		perPage   int
		total     int64
		wantPages int
	}{
		{"exact fit", 10, 100, 10},
		{"partial last page", 10, 101, 11},
		{"empty", 10, 0, 0},
		{"single item", 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := CreatePaginationMeta(&PaginationParams{Page: 1, PerPage: tt.perPage}, tt.total)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("expected %d pages, got %d", tt.wantPages, meta.TotalPages)
			}
			if meta.Total != tt.total {
				t.Errorf("expected total %d, got %d", tt.total, meta.Total)
			}
		})
	}
}
