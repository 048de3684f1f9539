package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meenakshitravels/models"
)

type listServer struct {
	mu      sync.Mutex
	queries []string
}

// newListServer answers every GET with the provided items and pagination and
// records each query string.
func newListServer(t *testing.T, items []models.Service, p *models.Pagination) (*listServer, *httptest.Server) {
	t.Helper()
	ls := &listServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ls.mu.Lock()
		ls.queries = append(ls.queries, r.URL.RawQuery)
		ls.mu.Unlock()
		writeEnvelope(rw, true, "", items, p)
	}))
	t.Cleanup(srv.Close)
	return ls, srv
}

func (ls *listServer) count() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.queries)
}

func (ls *listServer) last() string {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if len(ls.queries) == 0 {
		return ""
	}
	return ls.queries[len(ls.queries)-1]
}

func TestListControllerFetchPage(t *testing.T) {
	items := []models.Service{{Title: "Airport Taxi"}, {Title: "Temple Tours"}}
	ls, srv := newListServer(t, items, &models.Pagination{
		CurrentPage: 2, TotalPages: 5, TotalItems: 42, Limit: 10,
		HasNextPage: true, HasPrevPage: true,
	})

	ctrl := NewListController[models.Service](New(srv.URL), "/api/admin/service", "services_page")
	require.NoError(t, ctrl.FetchPage(context.Background(), 2))

	require.Len(t, ctrl.Items(), 2)
	assert.Equal(t, "Airport Taxi", ctrl.Items()[0].Title)
	assert.Equal(t, 2, ctrl.Pagination().CurrentPage)
	assert.Equal(t, int64(42), ctrl.Pagination().TotalItems)
	assert.Equal(t, "limit=10&page=2", ls.last())
}

func TestListControllerQueryIncludesFilters(t *testing.T) {
	ls, srv := newListServer(t, nil, nil)

	ctrl := NewListController[models.Service](New(srv.URL), "/api/admin/service", "")
	ctrl.SetDebounce(time.Hour) // keep the debounced refetch out of the way
	featured := true
	ctrl.SetFilters(Filters{Search: "taxi", Status: "active", Featured: &featured})
	require.NoError(t, ctrl.FetchPage(context.Background(), 1))

	assert.Equal(t, "featured=true&limit=10&page=1&search=taxi&status=active", ls.last())
}

func TestListControllerDebounceCollapsesFilterChanges(t *testing.T) {
	ls, srv := newListServer(t, nil, nil)

	ctrl := NewListController[models.Service](New(srv.URL), "/api/admin/service", "")
	ctrl.SetDebounce(40 * time.Millisecond)

	ctrl.SetFilters(Filters{Search: "t"})
	ctrl.SetFilters(Filters{Search: "ta"})
	ctrl.SetFilters(Filters{Search: "taxi"})

	require.Eventually(t, func() bool {
		return ls.count() == 1
	}, time.Second, 10*time.Millisecond, "three rapid filter changes should collapse into one fetch")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, ls.count())
	assert.Equal(t, "limit=10&page=1&search=taxi", ls.last())
}

func TestListControllerDiscardsStaleResponse(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			close(firstArrived)
			<-releaseFirst
			writeEnvelope(rw, true, "", []models.Service{{Title: "stale"}}, &models.Pagination{CurrentPage: 1})
			return
		}
		writeEnvelope(rw, true, "", []models.Service{{Title: "fresh"}}, &models.Pagination{CurrentPage: 2})
	}))
	defer srv.Close()

	ctrl := NewListController[models.Service](New(srv.URL), "/api/admin/service", "services_page")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.FetchPage(context.Background(), 1)
	}()

	<-firstArrived
	require.NoError(t, ctrl.FetchPage(context.Background(), 2))
	close(releaseFirst)
	wg.Wait()

	// The overtaken page-1 response must not overwrite page-2 state.
	require.Len(t, ctrl.Items(), 1)
	assert.Equal(t, "fresh", ctrl.Items()[0].Title)
	assert.Equal(t, 2, ctrl.Pagination().CurrentPage)
	assert.Equal(t, 2, ctrl.LastViewedPage())
}

func TestListControllerLastViewedPage(t *testing.T) {
	_, srv := newListServer(t, nil, nil)
	c := New(srv.URL)

	ctrl := NewListController[models.Service](c, "/api/admin/service", "services_page")
	assert.Equal(t, 1, ctrl.LastViewedPage())

	require.NoError(t, ctrl.FetchPage(context.Background(), 3))

	// A fresh controller over the same prefs resumes on the remembered page.
	again := NewListController[models.Service](c, "/api/admin/service", "services_page")
	assert.Equal(t, 3, again.LastViewedPage())

	// Controllers without a pref key always start at 1.
	anon := NewListController[models.Service](c, "/api/admin/service", "")
	assert.Equal(t, 1, anon.LastViewedPage())
}

func TestListControllerPageLinks(t *testing.T) {
	_, srv := newListServer(t, nil, &models.Pagination{CurrentPage: 5, TotalPages: 10})

	ctrl := NewListController[models.Service](New(srv.URL), "/api/admin/service", "")
	require.NoError(t, ctrl.FetchPage(context.Background(), 5))

	links := ctrl.PageLinks(1)
	require.Len(t, links, 7)
	assert.Equal(t, 1, links[0].Page)
	assert.True(t, links[1].Ellipsis)
	assert.Equal(t, 5, links[3].Page)
	assert.Equal(t, 10, links[6].Page)
}
