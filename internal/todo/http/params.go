package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
)

// pathID parses the named path value as a positive integer id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// pageParams reads skip and limit from the query string. Absent values are 0;
// range checks are left to the service.
func pageParams(r *http.Request) (skip, limit int64, err error) {
	q := r.URL.Query()

	if skip, err = queryInt(q.Get("skip"), "skip"); err != nil {
		return 0, 0, err
	}
	if limit, err = queryInt(q.Get("limit"), "limit"); err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func queryInt(raw, name string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func bearer(r *http.Request) string {
	return httpx.BearerToken(r.Context())
}
